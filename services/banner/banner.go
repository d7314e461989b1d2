// Package banner prints the platform information block at boot.
package banner

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X pedestriansense-go/services/banner.Version=...".
var (
	Version   = "1.0.0"
	BuildDate = "unknown"
)

type Info struct {
	Name       string
	Version    string
	BuildDate  string
	Platform   string
	Developer  string
	University string
	Department string
	Program    string
}

// Default describes this firmware on the given platform.
func Default(platform string) Info {
	return Info{
		Name:       "PedestrianSense",
		Version:    Version,
		BuildDate:  BuildDate,
		Platform:   platform,
		Developer:  "Iordanis Kostelidis <iordkost@ihu.gr>",
		University: "International Hellenic University",
		Department: "Department of Computer, Informatics and Telecommunications Engineering",
		Program:    "MSc in Robotics",
	}
}

// Print writes the name line followed by one indented line per non-empty field.
func Print(w io.Writer, in Info) error {
	if _, err := fmt.Fprintf(w, "%s\r\n", in.Name); err != nil {
		return err
	}
	rows := [...]struct{ k, v string }{
		{"version", in.Version},
		{"build date", in.BuildDate},
		{"platform", in.Platform},
		{"developer", in.Developer},
		{"university", in.University},
		{"department", in.Department},
		{"academic program", in.Program},
	}
	for _, r := range rows {
		if r.v == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, " %-18s%s\r\n", r.k, r.v); err != nil {
			return err
		}
	}
	return nil
}
