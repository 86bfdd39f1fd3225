package app

import "strings"

// ServiceName prefixes the version string reported in logs and /health.
const ServiceName = "inspoet"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/inspoet/internal/app.Version=1.2.0 -X github.com/heartmarshall/inspoet/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion renders "inspoet <version>" followed by the commit and build
// time when they were set.
func BuildVersion() string {
	var b strings.Builder
	b.WriteString(ServiceName)
	b.WriteByte(' ')
	b.WriteString(Version)

	var meta []string
	if Commit != "" {
		meta = append(meta, "commit "+Commit)
	}
	if BuildTime != "" {
		meta = append(meta, "built "+BuildTime)
	}
	if len(meta) > 0 {
		b.WriteString(" (" + strings.Join(meta, ", ") + ")")
	}
	return b.String()
}
