package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Defaults point at the public testnet deployment of the lottery contract.
type Config struct {
	Address       string        `env:"RUN_ADDRESS"     envDefault:"localhost:8080"`
	RPCURL        string        `env:"SUI_RPC_URL"     envDefault:"https://fullnode.testnet.sui.io:443"`
	BackendURL    string        `env:"BACKEND_URL"     envDefault:"https://decentralized-lottery-backend.onrender.com"`
	PackageID     string        `env:"PACKAGE_ID"      envDefault:"0x893b3176866d975a0a6054ce0326b9ce28ea0a5f473f7908ff6c66d7252b185d"`
	OwnerObjectID string        `env:"OWNER_OBJECT_ID" envDefault:"0xb8b7015adb1d6cab851f45e3f1fb31dd6c13703e9033273a0805860a1e4f0acd"`
	Module        string        `env:"MOVE_MODULE"     envDefault:"decentralized_lottery"`
	Keystore      string        `env:"SUI_KEYSTORE"    envDefault:"~/.sui/sui_config/sui.keystore"`
	GasBudget     uint64        `env:"GAS_BUDGET"      envDefault:"50000000"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT"    envDefault:"0s"`
	JWTSecret     string        `env:"JWT_SECRET"      envDefault:"change-me"`
	Database      string        `env:"DATABASE_URI"    envDefault:""`
	ExplorerURL   string        `env:"EXPLORER_URL"    envDefault:"https://suiscan.xyz/testnet"`
	LogLvl        string        `env:"LOG_LVL"         envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT"      envDefault:"console"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run console api")
	flag.StringVar(&cfg.RPCURL, "rpc", cfg.RPCURL, "sui full node json-rpc url")
	flag.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "lottery backend base url")
	flag.StringVar(&cfg.PackageID, "package", cfg.PackageID, "lottery package id")
	flag.StringVar(&cfg.OwnerObjectID, "owner", cfg.OwnerObjectID, "lottery owner shared object id")
	flag.StringVar(&cfg.Keystore, "k", cfg.Keystore, "path to sui keystore")
	flag.Uint64Var(&cfg.GasBudget, "gas", cfg.GasBudget, "gas budget in MIST")
	flag.DurationVar(&cfg.HTTPTimeout, "t", cfg.HTTPTimeout, "timeout for outbound http calls, 0 disables it")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "journal database DSN, empty disables the journal")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log encoding, console or json")
	flag.Parse()

	cfg.RPCURL = withScheme(cfg.RPCURL)
	cfg.BackendURL = strings.TrimRight(withScheme(cfg.BackendURL), "/")

	return cfg
}

func withScheme(addr string) string {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		return "http://" + addr
	}
	return addr
}
