// Package merge combines compound trees with right-biased semantics.
package merge

import (
	nbt "github.com/starfederation/nbt-go"
)

// Apply returns a new compound holding target with patch merged in. Entries
// whose values are compounds on both sides are merged recursively; any other
// patch entry replaces the target entry, or is appended when the key is new.
// Neither input is modified and the result shares no storage with them.
func Apply(target, patch *nbt.Compound) *nbt.Compound {
	out := target.Clone()
	if out == nil {
		out = nbt.NewCompound()
	}
	Into(out, patch)
	return out
}

// Into merges patch into target in place. Values taken from patch are cloned.
func Into(target, patch *nbt.Compound) {
	for key, pv := range patch.All() {
		pc, ok := pv.(*nbt.Compound)
		if !ok {
			target.Set(key, nbt.Clone(pv))
			continue
		}
		if tc, ok := target.GetCompound(key); ok {
			Into(tc, pc)
			continue
		}
		target.Set(key, pc.Clone())
	}
}

// Named merges the data of patch into target and keeps target's name.
func Named(target, patch nbt.Named) nbt.Named {
	return nbt.Named{Name: target.Name, Data: Apply(target.Data, patch.Data)}
}
