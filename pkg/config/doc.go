// Package config loads configuration structs from environment variables.
//
// Structs declare their settings with `env` tags; Load fills them in,
// honoring a .env file in the working directory when one exists:
//
//	type I18NConfig struct {
//		DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"en"`
//		Directory     string `env:"I18N_TRANSLATIONS_DIR"`
//	}
//
//	var cfg I18NConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The .env file is read at most once per process regardless of how many
// configs are loaded.
package config
