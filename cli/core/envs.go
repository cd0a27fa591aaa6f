package core

import (
	"os"
	"slices"
)

// Env is a single key/value pair destined for the deployment target.
type Env struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// DefaultKeys lists every variable the backend deployment may need.
// Order determines output order.
var DefaultKeys = []string{
	"MONGODB_URI",
	"JWT_KEY",
	"BACKEND_API_URL",
	"ALLOWED_ORIGINS",
	"FRONTEND_URL",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"MICROSOFT_CLIENT_ID",
	"MICROSOFT_CLIENT_SECRET",
	"STRIPE_SECRET_KEY",
	"STRIPE_PUBLISHABLE_KEY",
	"STRIPE_WEBHOOK_SECRET",
	"PAYPAL_CLIENT_ID",
	"PAYPAL_CLIENT_SECRET",
	"MPESA_CONSUMER_KEY",
	"MPESA_CONSUMER_SECRET",
	"MPESA_CALLBACK_URL",
	"CLOUDINARY_CLOUD_NAME",
	"CLOUDINARY_API_KEY",
	"CLOUDINARY_API_SECRET",
}

// trailingEnvs are always appended after the scanned keys, in this order.
var trailingEnvs = []Env{
	{Key: "NODE_ENV", Value: "production"},
	{Key: "PORT", Value: "3001"},
}

// LookupFunc resolves a variable name to its value. The boolean reports
// whether the name was found at all; an empty value is treated the same
// as a missing one by Collect.
type LookupFunc func(key string) (string, bool)

// OSLookup reads from the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ChainLookup tries each lookup in order and returns the first non-empty
// value found.
func ChainLookup(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if value, ok := lookup(key); ok && value != "" {
				return value, true
			}
		}
		return "", false
	}
}

// Collect walks keys in order and keeps every one that resolves to a
// non-empty value, then appends the fixed NODE_ENV and PORT entries.
// Missing or empty variables are skipped silently; the deployment target
// tolerates partial configuration.
func Collect(keys []string, lookup LookupFunc) []Env {
	envs := make([]Env, 0, len(keys)+len(trailingEnvs))
	for _, key := range keys {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}
		envs = append(envs, Env{Key: key, Value: value})
	}
	return append(envs, trailingEnvs...)
}

// SkippedKeys returns the keys that Collect would drop, for diagnostics.
func SkippedKeys(keys []string, lookup LookupFunc) []string {
	var skipped []string
	for _, key := range keys {
		if value, ok := lookup(key); !ok || value == "" {
			skipped = append(skipped, key)
		}
	}
	return skipped
}

// ScanKeys returns the builtin key list extended with any extra keys from
// the project config, duplicates removed.
func ScanKeys() []string {
	keys := slices.Clone(DefaultKeys)
	for _, key := range config.Sync.ExtraKeys {
		if slices.Contains(keys, key) {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
