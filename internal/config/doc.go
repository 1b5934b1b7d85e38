// Package config reads and writes animate.json, the project file of the
// animate command.
//
// # Configuration File Structure
//
//	{
//	  "name": "landing",
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "trustedProxies": ["10.0.0.0/8"]
//	  },
//	  "settings": {
//	    "file": "settings.json"
//	  },
//	  "dev": {
//	    "reload": true,
//	    "pollInterval": "500ms"
//	  },
//	  "metrics": {
//	    "namespace": "animate"
//	  }
//	}
//
// The settings source is either a JSON file, an S3 object
// ("settings": {"s3": {"bucket": "...", "key": "..."}}) or inline values
// ("settings": {"values": {"duration": 600}}).
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store, err := animate.LoadSettings(ctx, cfg.Source())
package config
