package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

const (
	// DefaultKeyserverHost and DefaultKeyserverPort are used when
	// config.toml doesn't name a keyserver.
	DefaultKeyserverHost = "keyserver.ubuntu.com"
	DefaultKeyserverPort = 11371
)

// Load attempts to load `config.toml` from inside the given gohkp
// directory.
// If the file is not present, Load will try to create it and will return
// an error if it can't.
// If the file is present but doesn't parse correctly, it will return an
// error.
func Load(gohkpDirectory string) (*Config, error) {
	configFilename := path.Join(gohkpDirectory, "config.toml")

	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		// file does not exist, write out default config file
		err = atomic.WriteFile(configFilename, bytes.NewBufferString(defaultConfigFile))
		if err != nil {
			return nil, fmt.Errorf("%s didn't exist and failed to create it: %v", configFilename, err)
		}
	}

	f, err := os.Open(configFilename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", configFilename, err)
	}
	defer f.Close()

	config, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", configFilename, err)
	}
	config.filename = configFilename
	return config, nil
}

type Config struct {
	parsedConfig   tomlConfig
	parsedMetadata toml.MetaData

	filename string
}

func (c *Config) GetFilename() string {
	return c.filename
}

// KeyserverHost returns the keyserver named in the config file, or the
// default.
func (c *Config) KeyserverHost() string {
	if !c.parsedMetadata.IsDefined("keyserver_host") {
		return DefaultKeyserverHost
	}
	return c.parsedConfig.KeyserverHost
}

// KeyserverPort returns the keyserver port named in the config file, or
// the default.
func (c *Config) KeyserverPort() int {
	if !c.parsedMetadata.IsDefined("keyserver_port") {
		return DefaultKeyserverPort
	}
	return c.parsedConfig.KeyserverPort
}

func parse(r io.Reader) (*Config, error) {
	var parsedConfig tomlConfig
	metadata, err := toml.DecodeReader(r, &parsedConfig)

	if err != nil {
		return nil, fmt.Errorf("error in toml.DecodeReader: %v", err)
	}

	if len(metadata.Undecoded()) > 0 {
		// found config variables that we don't know how to match to
		// the tomlConfig structure
		return nil, fmt.Errorf("encountered unrecognised config keys: %v", metadata.Undecoded())
	}

	config := Config{
		parsedConfig:   parsedConfig,
		parsedMetadata: metadata,
	}
	return &config, nil
}

type tomlConfig struct {
	KeyserverHost string `toml:"keyserver_host"`
	KeyserverPort int    `toml:"keyserver_port"`
}

const defaultConfigFile string = `# gohkp configuration file
#
# # keyserver_host is the keyserver that search, get and send talk to.
# # It can carry an http:// or https:// scheme; without one, http:// is
# # assumed.
#
# keyserver_host = "keyserver.ubuntu.com"
#
# # keyserver_port is the TCP port the keyserver listens on, usually 11371.
#
# keyserver_port = 11371

`
