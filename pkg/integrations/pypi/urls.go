package pypi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProjectURL is one labelled entry of a package's declared project URLs.
type ProjectURL struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ProjectURLs is the "project_urls" mapping of a PyPI release, kept in the
// order the index serialized it. Repository detection is first-match-wins.
type ProjectURLs []ProjectURL

// UnmarshalJSON decodes a JSON object (or null) while preserving key order.
// Non-string values are kept with an empty URL.
func (p *ProjectURLs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("project_urls: expected object, got %v", tok)
	}

	var urls ProjectURLs
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("project_urls: expected string key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			value = ""
		}
		urls = append(urls, ProjectURL{Label: label, URL: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = urls
	return nil
}

// MarshalJSON encodes the URLs back into a JSON object in declaration order.
func (p ProjectURLs) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, u := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(u.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(u.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
