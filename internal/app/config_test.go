package app

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("unexpected http addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("unexpected metrics addr: %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Errorf("unexpected storage driver: %s", cfg.StorageDriver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "memory ok", mutate: func(*Config) {}},
		{
			name: "postgres without dsn",
			mutate: func(c *Config) {
				c.StorageDriver = StoragePostgres
			},
			wantErr: true,
		},
		{
			name: "postgres with dsn",
			mutate: func(c *Config) {
				c.StorageDriver = StoragePostgres
				c.PostgresDSN = "postgres://localhost/bookstore"
			},
		},
		{
			name: "unknown driver",
			mutate: func(c *Config) {
				c.StorageDriver = "cassandra"
			},
			wantErr: true,
		},
		{
			name: "empty http addr",
			mutate: func(c *Config) {
				c.HTTPAddr = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
