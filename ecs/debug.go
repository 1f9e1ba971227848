package ecs

import "sort"

// ComponentNames lists the named components attached to e, sorted.
func ComponentNames(w *World, e Entity) []string {
	if !IsAlive(w, e) {
		return nil
	}
	var names []string
	for id, s := range w.stores {
		if s.Has(e) {
			names = append(names, w.componentName(id))
		}
	}
	sort.Strings(names)
	return names
}
