// Package config loads the kernel's tunable settings from TOML: the
// default terminator for new content, searcher defaults, and per
// content-type identifier-syntax extensions. All settings default
// sensibly, so the package is optional at runtime.
//
//	cfg, err := config.Load(file)
//	doc := kernel.New(kernel.WithContentTypeInformation(
//	    config.NewContentTypeInformation(cfg)))
package config
