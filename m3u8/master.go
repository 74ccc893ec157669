package m3u8

// RenditionNames returns the NAME of every EXT-X-MEDIA entry, verbatim,
// or "Unknown" for entries without one.
func (p *MasterPlaylist) RenditionNames() []string {
	var names []string
	for _, e := range p.Entries {
		if e.Kind != TagMedia {
			continue
		}
		name, ok := e.Attributes.Get("NAME")
		if !ok {
			name = unknownRendition
		}
		names = append(names, name)
	}
	return names
}

// FirstVariantURI returns the URI of the first EXT-X-STREAM-INF entry.
func (p *MasterPlaylist) FirstVariantURI() (string, bool) {
	for _, e := range p.Entries {
		if e.Kind == TagStreamInf {
			return e.Attributes.Get(uriKey)
		}
	}
	return "", false
}

// RenditionURI returns the URI of the variant whose VIDEO group is the
// GROUP-ID of the rendition called name. Names are compared verbatim,
// quotes included.
func (p *MasterPlaylist) RenditionURI(name string) (string, bool) {
	var groupID string
	found := false
	for _, e := range p.Entries {
		if e.Kind != TagMedia {
			continue
		}
		if n, ok := e.Attributes.Get("NAME"); ok && n == name {
			groupID, found = e.Attributes.Get("GROUP-ID")
			break
		}
	}
	if !found {
		return "", false
	}
	for _, e := range p.Entries {
		if e.Kind != TagStreamInf {
			continue
		}
		if v, ok := e.Attributes.Get("VIDEO"); ok && v == groupID {
			return e.Attributes.Get(uriKey)
		}
	}
	return "", false
}
