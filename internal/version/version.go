package version

// Static build metadata. Update Version when making a release.
const (
	Service   = "comanda"
	Version   = "0.1.0"
	Commit    = ""
	BuildTime = ""
)

type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
}

func Get() Info {
	return Info{
		Service:   Service,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}
