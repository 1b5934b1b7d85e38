package animate

import (
	"github.com/vango-dev/animate/pkg/settings"
	"github.com/vango-dev/animate/pkg/vdom"
)

const (
	// Library is the asset library every animated page loads.
	Library = "neo_animate/animate"

	// SettingsNamespace is the client settings key holding this package's
	// entries.
	SettingsNamespace = "neoAnimate"

	// SettingsDefaults is the entry under SettingsNamespace the client
	// passes to AOS.init.
	SettingsDefaults = "defaults"
)

// BootstrapPayload returns the global settings that differ from the library
// defaults, without animation: the animation is always set per element.
func (d *Descriptor) BootstrapPayload() map[string]any {
	return Payload(d.gs)
}

// Payload computes the bootstrap payload for gs.
func Payload(gs GlobalSettings) map[string]any {
	diff := gs.DiffFromDefault()
	out := make(map[string]any, len(diff))
	for k, v := range diff {
		if k == settings.KeyAnimation {
			continue
		}
		out[k] = v
	}
	return out
}

// Attachments returns the library reference plus, when the payload is not
// empty, the payload under neoAnimate.defaults.
func (d *Descriptor) Attachments() vdom.Attachments {
	return PageAttachments(d.gs)
}

// PageAttachments is Attachments without a descriptor.
func PageAttachments(gs GlobalSettings) vdom.Attachments {
	var a vdom.Attachments
	a.AddLibrary(Library)
	if payload := Payload(gs); len(payload) > 0 {
		a.SetSetting(payload, SettingsNamespace, SettingsDefaults)
	}
	return a
}
