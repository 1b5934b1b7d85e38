// Package dev implements live settings reload.
//
// A Watcher polls a settings.Source for a new version. A Reloader reacts to
// a change by loading the source into a fresh settings.Store, swapping it
// into the shared settings.Holder and broadcasting the new bootstrap payload
// through a ReloadHub. Browsers connected to the hub re-initialise AOS with
// the pushed defaults.
//
// # Usage
//
//	hub := dev.NewReloadHub(dev.HubConfig{CheckOrigin: server.SameOriginCheck})
//	srv.SetReloadHandler(hub)
//
//	r := dev.NewReloader(src, holder, hub)
//	go r.Run(ctx, time.Second)
//
// # Messages
//
//	{"type": "settings", "defaults": {"duration": 600}}
//	{"type": "error", "error": "E131: Invalid settings document ..."}
package dev
