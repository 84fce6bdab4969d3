package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/warmboot/internal/app"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cache files and whether the next boot would trust them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := globalOptions(cmd)

			status, err := c.app.Status(cmd.Context(), app.StatusOptions{Options: opts})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeStatusJSON(cmd.OutOrStdout(), status)
			}
			return writeStatusText(cmd.OutOrStdout(), status)
		},
	}
}

type statusDTO struct {
	Artifact        string     `json:"artifact"`
	ArtifactPresent bool       `json:"artifact_present"`
	Marker          string     `json:"marker"`
	MarkerVersion   *string    `json:"marker_version"`
	Runtime         string     `json:"runtime"`
	Verdict         string     `json:"verdict"`
	Header          *headerDTO `json:"header,omitempty"`
	HeaderError     string     `json:"header_error,omitempty"`
}

type headerDTO struct {
	Encoding  string    `json:"encoding"`
	Producer  string    `json:"producer"`
	WrittenAt time.Time `json:"written_at,omitzero"`
	Length    int       `json:"length"`
	Checksum  string    `json:"checksum"`
}

func toStatusDTO(s *domain.CacheStatus) statusDTO {
	dto := statusDTO{
		Artifact:        s.Layout.ArtifactPath,
		ArtifactPresent: s.ArtifactPresent,
		Marker:          s.Layout.MarkerPath,
		Runtime:         s.RuntimeVersion,
		Verdict:         s.Verdict.String(),
	}
	if s.Marker.Present {
		v := s.Marker.Version
		dto.MarkerVersion = &v
	}
	if h := s.Header; h != nil {
		dto.Header = &headerDTO{
			Encoding:  string(h.Encoding),
			Producer:  h.Producer,
			WrittenAt: h.WrittenAt,
			Length:    h.Length,
			Checksum:  h.Checksum,
		}
	}
	if s.HeaderError != nil {
		dto.HeaderError = s.HeaderError.Error()
	}
	return dto
}

func writeStatusJSON(w io.Writer, s *domain.CacheStatus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toStatusDTO(s)); err != nil {
		return zerr.Wrap(err, "failed to encode status")
	}
	return nil
}

func writeStatusText(w io.Writer, s *domain.CacheStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	artifact := "absent"
	if s.ArtifactPresent {
		artifact = "present"
	}
	marker := "absent"
	if s.Marker.Present {
		marker = s.Marker.Version
	}

	_, _ = fmt.Fprintf(tw, "artifact:\t%s\t(%s)\n", s.Layout.ArtifactPath, artifact)
	_, _ = fmt.Fprintf(tw, "marker:\t%s\t(%s)\n", s.Layout.MarkerPath, marker)
	_, _ = fmt.Fprintf(tw, "runtime:\t%s\n", s.RuntimeVersion)
	if h := s.Header; h != nil {
		_, _ = fmt.Fprintf(tw, "header:\t%s, %d bytes, by %s\n", h.Encoding, h.Length, h.Producer)
		if !h.WrittenAt.IsZero() {
			_, _ = fmt.Fprintf(tw, "written:\t%s\n", h.WrittenAt.Format(time.RFC3339))
		}
	}
	if s.HeaderError != nil {
		_, _ = fmt.Fprintf(tw, "error:\t%s\n", s.HeaderError)
	}
	_, _ = fmt.Fprintf(tw, "verdict:\t%s\n", s.Verdict)

	if err := tw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to write status")
	}
	return nil
}
