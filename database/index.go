package database

// index maps an owning id to the ordered ids of the records that reference it.
type index map[string][]string

func (ix index) add(key, id string) bool {
	for _, existing := range ix[key] {
		if existing == id {
			return false
		}
	}
	ix[key] = append(ix[key], id)
	return true
}

func (ix index) remove(key, id string) bool {
	ids := ix[key]
	for i, existing := range ids {
		if existing == id {
			ix[key] = append(ids[:i:i], ids[i+1:]...)
			if len(ix[key]) == 0 {
				delete(ix, key)
			}
			return true
		}
	}
	return false
}

func (ix index) has(key, id string) bool {
	for _, existing := range ix[key] {
		if existing == id {
			return true
		}
	}
	return false
}

// get returns a copy so callers may delete while iterating.
func (ix index) get(key string) []string {
	return append([]string(nil), ix[key]...)
}
