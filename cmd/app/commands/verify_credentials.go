package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	credentialDomain "github.com/allisson/credseal/internal/credential/domain"
	credentialUseCase "github.com/allisson/credseal/internal/credential/usecase"
)

// VerificationReport is the JSON output of verify-credentials.
type VerificationReport struct {
	File    string               `json:"file"`
	Total   int                  `json:"total"`
	Valid   int                  `json:"valid"`
	Invalid int                  `json:"invalid"`
	Records []VerificationRecord `json:"records"`
}

// VerificationRecord is the outcome for one credential.
type VerificationRecord struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// RunVerifyCredentials checks that every envelope in the credentials file
// opens under the resolved key. Plaintexts are never printed. Returns an
// error when at least one record fails so the process exits non-zero.
func RunVerifyCredentials(
	ctx context.Context,
	recordUseCase credentialUseCase.RecordUseCase,
	resolver credentialUseCase.KeyResolver,
	logger *slog.Logger,
	writer io.Writer,
	path, explicitKey, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	warnOnDefaultKey(resolver, explicitKey, logger)

	results, err := recordUseCase.VerifyAll(ctx, explicitKey)
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	report := buildReport(path, results)

	if format == "json" {
		if err := writeJSON(writer, report); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputVerifyText(writer, report)
	}

	logger.Info("credential verification completed",
		slog.String("file", path),
		slog.Int("total", report.Total),
		slog.Int("valid", report.Valid),
		slog.Int("invalid", report.Invalid),
	)

	if report.Invalid > 0 {
		return fmt.Errorf("verification failed: %d of %d credential(s) could not be opened", report.Invalid, report.Total)
	}
	return nil
}

func buildReport(path string, results []credentialDomain.VerificationResult) VerificationReport {
	report := VerificationReport{
		File:    path,
		Total:   len(results),
		Records: make([]VerificationRecord, 0, len(results)),
	}
	for _, result := range results {
		record := VerificationRecord{ID: result.ID, Valid: result.Valid}
		if result.Valid {
			report.Valid++
		} else {
			report.Invalid++
			record.Error = result.Err.Error()
		}
		report.Records = append(report.Records, record)
	}
	return report
}

func outputVerifyText(writer io.Writer, report VerificationReport) {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	for _, record := range report.Records {
		if record.Valid {
			_, _ = fmt.Fprintf(tw, "%s\tOK\n", record.ID)
		} else {
			_, _ = fmt.Fprintf(tw, "%s\tFAILED\t%s\n", record.ID, record.Error)
		}
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(writer, "\n%d checked, %d valid, %d invalid (%s)\n",
		report.Total, report.Valid, report.Invalid, report.File)
}
