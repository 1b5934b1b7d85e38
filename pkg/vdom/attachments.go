package vdom

// Attachments lists the page level resources a node depends on.
//
// Library holds asset library references in first-seen order. Settings holds
// client-side settings keyed by namespace; nested maps merge key by key and
// the last write wins on leaves, so many nodes can carry the same global
// entry without duplicating it.
type Attachments struct {
	Library  []string
	Settings map[string]any
}

// IsEmpty reports whether nothing is attached.
func (a Attachments) IsEmpty() bool {
	return len(a.Library) == 0 && len(a.Settings) == 0
}

// AddLibrary adds a library reference unless it is already present.
func (a *Attachments) AddLibrary(names ...string) {
	for _, name := range names {
		if name == "" || a.HasLibrary(name) {
			continue
		}
		a.Library = append(a.Library, name)
	}
}

// HasLibrary reports whether the library reference is present.
func (a Attachments) HasLibrary(name string) bool {
	for _, l := range a.Library {
		if l == name {
			return true
		}
	}
	return false
}

// SetSetting stores value under the nested path, creating intermediate maps.
// An empty path is a no-op.
func (a *Attachments) SetSetting(value any, path ...string) {
	if len(path) == 0 {
		return
	}
	if a.Settings == nil {
		a.Settings = make(map[string]any)
	}
	m := a.Settings
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

// Setting returns the value stored under the nested path.
func (a Attachments) Setting(path ...string) (any, bool) {
	if len(path) == 0 || a.Settings == nil {
		return nil, false
	}
	var cur any = a.Settings
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Merge folds other into a.
func (a *Attachments) Merge(other Attachments) {
	a.AddLibrary(other.Library...)
	if len(other.Settings) == 0 {
		return
	}
	if a.Settings == nil {
		a.Settings = make(map[string]any, len(other.Settings))
	}
	mergeSettings(a.Settings, other.Settings)
}

func mergeSettings(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeSettings(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(srcMap))
			mergeSettings(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

// Collect walks the tree depth first and merges every node's attachments,
// including those of rendered components.
func Collect(root *VNode) Attachments {
	var out Attachments
	collect(root, &out)
	return out
}

func collect(node *VNode, out *Attachments) {
	if node == nil {
		return
	}
	if node.Attached != nil {
		out.Merge(*node.Attached)
	}
	if node.Kind == KindComponent && node.Comp != nil {
		collect(node.Comp.Render(), out)
		return
	}
	for _, child := range node.Children {
		collect(child, out)
	}
}
