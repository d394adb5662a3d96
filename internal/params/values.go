package params

// Values is the flat string-keyed parameter map exchanged with callers.
// Global parameters use bare ids; per-tier parameters use synthesized
// tier_<tierId>_<field> keys. Missing keys fall back to schema defaults.
type Values map[string]float64

// Get returns the value for a global parameter id, falling back to its
// schema default when absent.
func (v Values) Get(id string) float64 {
	if val, ok := v[id]; ok {
		return val
	}
	if def, ok := Lookup(id); ok {
		return def.Default
	}
	return 0
}

// GetTier returns the value for a per-tier field, falling back to the
// tier's default when the synthesized key is absent.
func (v Values) GetTier(id TierID, field string) float64 {
	if val, ok := v[TierKey(id, field)]; ok {
		return val
	}
	for _, td := range TierDefs {
		if td.ID == id {
			return tierDefault(td, field)
		}
	}
	return 0
}

// Clone returns a deep copy. Sensitivity analysis perturbs clones so the
// caller's map is never mutated.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Clamp forces every known parameter into its declared [min, max] range
// and returns the receiver. Unknown keys are left untouched; the engine
// ignores them.
func (v Values) Clamp() Values {
	for _, d := range AllDefs() {
		if val, ok := v[d.ID]; ok {
			if val < d.Min {
				v[d.ID] = d.Min
			} else if val > d.Max {
				v[d.ID] = d.Max
			}
		}
	}
	return v
}
