package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/dmitrijs2005/fleamarket/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Empty fields in the
// file leave the current value untouched.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	LogLevel     string `json:"log_level"`
	AdminEmail   string `json:"admin_email"`
	AdminSecret  string `json:"admin_secret"`
	AdminName    string `json:"admin_name"`
	AdminContact string `json:"admin_contact"`
}

// parseJson overlays values from the JSON file named by the -c or
// -config flag. If neither flag is set, no file is loaded. A file that
// cannot be read or parsed is a startup failure.
func parseJson(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fileName := fs.String("c", "", "config file name")
	fs.StringVar(fileName, "config", "", "config file name")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *fileName == "" {
		return
	}

	data, err := os.ReadFile(*fileName)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		config.DataDir = jc.DataDir
	}
	if jc.LogLevel != "" {
		config.LogLevel = jc.LogLevel
	}
	if jc.AdminEmail != "" {
		config.AdminEmail = jc.AdminEmail
	}
	if jc.AdminSecret != "" {
		config.AdminSecret = jc.AdminSecret
	}
	if jc.AdminName != "" {
		config.AdminName = jc.AdminName
	}
	if jc.AdminContact != "" {
		config.AdminContact = jc.AdminContact
	}
}
