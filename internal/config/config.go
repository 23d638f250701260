package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server  Server  `koanf:"server"`
	Widget  Widget  `koanf:"widget"`
	Metrics Metrics `koanf:"metrics"`
}

type Server struct {
	Addr string `koanf:"addr"`
	// Transport selects how the MCP server is exposed: "http" or "stdio".
	Transport      string   `koanf:"transport"`
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type Widget struct {
	// Domain the widget is served from in production deployments.
	Domain string `koanf:"domain"`
	// Path overrides the embedded widget HTML with a file on disk.
	Path string `koanf:"path"`
}

type Metrics struct {
	Enabled bool `koanf:"enabled"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr:           ":8000",
			Transport:      "http",
			AllowedOrigins: []string{"*"},
		},
		Widget: Widget{
			Domain: "https://web-sandbox.oaiusercontent.com",
		},
		Metrics: Metrics{
			Enabled: true,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "TIMELEFT_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TIMELEFT_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
