package config

import (
	"errors"
	"flag"
	"net"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	DBUrl       string
	RegistryUrl string
	HTTPTimeout time.Duration
	Debug       bool
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "survey1cl.sqlite", "path to SQLite3 autosave DB file (default survey1cl.sqlite)")
	flag.StringVar(&cfg.RegistryUrl, "registry-url", "", "base URL of the student registry service")
	var timeout uint
	flag.UintVar(&timeout, "registry-timeout", 15, "registry request timeout in seconds (default 15)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.HTTPTimeout = time.Duration(timeout) * time.Second

	if cfg.RegistryUrl == "" {
		err = errors.New("missing parameter -registry-url")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
