package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/catalog"
	"github.com/suar-net/suar-time/internal/config"
	"github.com/suar-net/suar-time/internal/service"
)

// buildCatalog loads the embedded translations and, when configured, the
// override directory on top. An unreadable override is fatal unless degraded
// mode is allowed.
func buildCatalog(cfg config.CatalogConfig, log zerolog.Logger) (*catalog.Catalog, error) {
	base := []catalog.Option{
		catalog.WithDocumentationURL(cfg.DocsURL),
		catalog.WithYAMLDir(catalog.Embedded()),
	}

	if cfg.Dir == "" {
		c, err := catalog.New(base...)
		if err != nil {
			return nil, fmt.Errorf("embedded catalog: %w", err)
		}
		return c, nil
	}

	override := os.DirFS(cfg.Dir)
	c, err := catalog.New(append(base,
		catalog.WithYAMLDir(override),
		catalog.WithJSONDir(override),
	)...)
	if err == nil {
		log.Info().Str("dir", cfg.Dir).Strs("languages", c.Languages()).Msg("catalog loaded")
		return c, nil
	}
	if !cfg.AllowDegraded {
		return nil, fmt.Errorf("catalog %s: %w", cfg.Dir, err)
	}

	log.Warn().Err(err).Str("dir", cfg.Dir).Msg("catalog override failed, running on embedded catalog")
	c, embeddedErr := catalog.New(append(base, catalog.WithDegraded())...)
	if embeddedErr != nil {
		return nil, fmt.Errorf("embedded catalog: %w", embeddedErr)
	}
	return c, nil
}

func newConversionService(c *catalog.Catalog, log zerolog.Logger) *service.ConversionService {
	return service.NewConversionService(service.NewFormatter(c), c, log)
}
