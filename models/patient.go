package models

// Patient is a patient record as exchanged over the API.
//
// It is an open string-keyed mapping with no structural guarantees: request
// bodies are accepted as-is and echoed back, nothing is validated. Replace it
// with a typed schema once records are persisted.
//
// encoding/json writes map keys in sorted order, so "id" is not necessarily
// the first key of an encoded record. JSON objects are unordered and clients
// must not rely on key order.
type Patient map[string]any

// Clone returns a shallow copy of p.
func (p Patient) Clone() Patient {
	if p == nil {
		return nil
	}

	c := make(Patient, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// WithID returns a new record holding id under "id" followed by every field
// of p. Fields of p take precedence, including an "id" present in p.
func (p Patient) WithID(id int64) Patient {
	merged := make(Patient, len(p)+1)
	merged["id"] = id
	for k, v := range p {
		merged[k] = v
	}
	return merged
}
