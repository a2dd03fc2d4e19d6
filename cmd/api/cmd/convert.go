package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/suar-net/suar-time/internal/config"
	"github.com/suar-net/suar-time/internal/handler"
	"github.com/suar-net/suar-time/internal/logger"
	"github.com/suar-net/suar-time/internal/model"
	"github.com/suar-net/suar-time/internal/service"
)

var convertReq model.ConversionRequest

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Run one conversion and print the JSON response",
	Example: `  suar-time convert --type unix --format all --value 1700000000 --gmt +05:30
  suar-time convert --type time --format readable --value 2023/11/14@22:13:20 --lang es`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.StringVar(&convertReq.Type, "type", "", "input type: time or unix")
	f.StringVar(&convertReq.Format, "format", "", "output format: utc, readable, iso8601, unix or all")
	f.StringVar(&convertReq.Value, "value", "", "value to convert")
	f.StringVar(&convertReq.Offset, "gmt", "", "UTC offset, e.g. +05:30 (default +0000)")
	f.StringVar(&convertReq.Language, "lang", "", "language of readable output (default en)")
	f.StringVar(&convertReq.ErrorLanguage, "error-lang", "", "language of error messages (default en)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.NewWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	c, err := buildCatalog(cfg.Catalog, log)
	if err != nil {
		return err
	}

	req := convertReq
	return convert(cmd.Context(), newConversionService(c, log), &req, cmd.OutOrStdout())
}

// convert writes the same envelope the HTTP endpoint returns. A failed
// conversion still prints its envelope and then reports an error so the
// process exits non-zero.
func convert(ctx context.Context, conv handler.Converter, req *model.ConversionRequest, out io.Writer) error {
	result, err := conv.Convert(ctx, req)

	var payload any = model.DTOResponse{Result: result}
	if err != nil {
		var f *service.Failure
		if !errors.As(err, &f) {
			return err
		}
		payload = model.DTOErrorResponse{
			Error:         model.DTOError{Code: f.Code.String(), Message: f.Message},
			Documentation: f.Documentation,
		}
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if encErr := enc.Encode(payload); encErr != nil {
		return encErr
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}
