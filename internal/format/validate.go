package format

import (
	"fmt"

	"github.com/nvellum/slabdb/internal/buf"
)

// ValidateResult is what Validate learns from a header/footer pair.
type ValidateResult struct {
	TopRef         uint64
	FileFormat     uint8
	SelectSlot     int
	Streaming      bool
	ServerSyncMode bool
}

// Validate implements the header/footer validation contract: magic and
// alignment checks, format-version gating (with the v2->v3 upgrade allowed
// only for shared access), streaming-footer detection, and top_ref bounds
// checking. It is pure: it never touches a file, only the bytes handed to it.
//
// skipChecks bypasses the format-version and top_ref-bounds hard failures
// while still parsing every field — the caller asserted the file is already
// trustworthy (attach_file's skip_validate) and only wants the fields.
//
// checkServerSyncMode, when true, requires the file's server-sync-mode flag
// to equal wantServerSyncMode.
func Validate(data []byte, shared, skipChecks, checkServerSyncMode, wantServerSyncMode bool) (ValidateResult, error) {
	size := len(data)
	if size < HeaderSize {
		return ValidateResult{}, fmt.Errorf("validate: %w", ErrTruncated)
	}
	if !skipChecks {
		if err := buf.CheckAligned8("file size", int64(size)); err != nil {
			return ValidateResult{}, fmt.Errorf("validate: %w", err)
		}
	}

	h, err := ParseHeader(data)
	if err != nil {
		return ValidateResult{}, err
	}

	slot := h.Select()
	fileFormat := h.FileFormat[slot]
	switch {
	case fileFormat == CurrentFileFormat:
		// ok
	case fileFormat == PreviousUpgradableFileFormat && shared:
		fileFormat = CurrentFileFormat
	case skipChecks:
		// trust the caller; keep whatever version was on disk
	default:
		return ValidateResult{}, fmt.Errorf("validate: format %d: %w", fileFormat, ErrUnsupportedVersion)
	}

	ref := h.TopRef[slot]
	streaming := false
	if slot == 0 && ref == StreamingTopRefSentinel {
		if size < HeaderSize+FooterSize {
			if !skipChecks {
				return ValidateResult{}, fmt.Errorf("validate: streaming form too small: %w", ErrTruncated)
			}
		} else {
			footer, ferr := ParseFooter(data[size-FooterSize:])
			if ferr != nil && !skipChecks {
				return ValidateResult{}, ferr
			}
			if ferr == nil {
				ref = footer.TopRef
				streaming = true
			}
		}
	}

	if !skipChecks {
		if err := buf.CheckAligned8("top_ref", int64(ref)); err != nil || ref >= uint64(size) {
			return ValidateResult{}, fmt.Errorf("validate: top_ref=%d size=%d: %w", ref, size, ErrBadTopRef)
		}
	}

	if checkServerSyncMode && h.ServerSyncMode() != wantServerSyncMode {
		return ValidateResult{}, fmt.Errorf("validate: %w", ErrServerSyncModeMismatch)
	}

	return ValidateResult{
		TopRef:         ref,
		FileFormat:     fileFormat,
		SelectSlot:     slot,
		Streaming:      streaming,
		ServerSyncMode: h.ServerSyncMode(),
	}, nil
}
