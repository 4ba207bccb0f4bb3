package info

import "runtime"

// A Info of the service
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"goVersion"`
	BuildDate string `json:"buildDate"`
}

// New fills the go version from the runtime
func New(name, version, commit, buildDate string) *Info {
	return &Info{
		Name:      name,
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		BuildDate: buildDate,
	}
}
