package cli

import (
	"strings"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/spf13/pflag"
)

// copyFormatValue is a pflag.Value accepting the copy format names.
type copyFormatValue domain.CopyFormat

var _ pflag.Value = (*copyFormatValue)(nil)

func newCopyFormatValue(def domain.CopyFormat, p *domain.CopyFormat) *copyFormatValue {
	*p = def
	return (*copyFormatValue)(p)
}

func (v *copyFormatValue) String() string { return string(*v) }

func (v *copyFormatValue) Set(s string) error {
	f, err := domain.ParseCopyFormat(s)
	if err != nil {
		return err
	}
	*v = copyFormatValue(f)
	return nil
}

func (v *copyFormatValue) Type() string { return "format" }

func copyFormatNames() []string {
	names := make([]string, len(domain.CopyFormats))
	for i, f := range domain.CopyFormats {
		names[i] = string(f)
	}
	return names
}

func copyFormatUsage() string {
	return "Summary format (" + strings.Join(copyFormatNames(), "|") + ")"
}
