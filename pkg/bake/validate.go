package bake

// Validate returns the keys of every field of rec whose value lies outside
// its bounds or token set. An empty result means the record is valid.
// Validate never modifies rec.
func Validate(rec Record) []string {
	if rec == nil {
		return nil
	}
	return violations(rec.Fields())
}

// Lookup returns the field of rec with the given key.
func Lookup(rec Record, key string) (Field, bool) {
	return lookup(rec.Fields(), key)
}
