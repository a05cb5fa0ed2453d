// Package descriptor holds the typed form of a per-version descriptor
// document. The document is decoded once at the boundary; defaults for
// optional fields live on accessor methods so consumers never poke at
// raw JSON.
package descriptor

import (
	"encoding/json"
	"fmt"

	"github.com/catclient/catclient/internal/rules"
)

type Descriptor struct {
	MainClass  string      `json:"mainClass"`
	Type       string      `json:"type"`
	AssetIndex AssetIndex  `json:"assetIndex"`
	Downloads  Downloads   `json:"downloads"`
	Libraries  []Library   `json:"libraries"`
	Arguments  *Arguments  `json:"arguments,omitempty"`

	// LegacyArguments is the pre-1.13 single-string argument form. Only
	// consulted when Arguments is absent.
	LegacyArguments string `json:"minecraftArguments,omitempty"`
}

type AssetIndex struct {
	ID string `json:"id"`
}

type Downloads struct {
	Client *ArtifactInfo `json:"client,omitempty"`
}

// ArtifactInfo points at one downloadable binary with its expected
// content digest.
type ArtifactInfo struct {
	Path string `json:"path,omitempty"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
}

type Library struct {
	Name      string           `json:"name"`
	Downloads LibraryDownloads `json:"downloads"`
}

type LibraryDownloads struct {
	Artifact *ArtifactInfo `json:"artifact,omitempty"`
}

type Arguments struct {
	JVM  []Argument `json:"jvm"`
	Game []Argument `json:"game"`
}

// Argument is either a literal token or a rule-gated value. In the JSON
// form a literal is a bare string; a conditional is an object carrying
// "rules" and a "value" that is itself a string or a list of strings.
type Argument struct {
	Values []string
	Rules  []rules.Rule
}

// Literal reports whether the argument applies unconditionally.
func (a Argument) Literal() bool {
	return len(a.Rules) == 0
}

func (a *Argument) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Values = []string{s}
		a.Rules = nil
		return nil
	}

	var obj struct {
		Value json.RawMessage `json:"value"`
		Rules []rules.Rule    `json:"rules"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("argument must be a string or an object: %w", err)
	}
	a.Rules = obj.Rules
	a.Values = nil

	if len(obj.Value) == 0 || string(obj.Value) == "null" {
		return nil
	}
	var one string
	if err := json.Unmarshal(obj.Value, &one); err == nil {
		a.Values = []string{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(obj.Value, &many); err != nil {
		return fmt.Errorf("argument value must be a string or a list of strings: %w", err)
	}
	a.Values = many
	return nil
}

// Decode parses a descriptor document.
func Decode(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor: %w", err)
	}
	return &d, nil
}

// AssetIndexID returns the asset index id, defaulting to "legacy" when
// the descriptor does not declare one.
func (d *Descriptor) AssetIndexID() string {
	if d.AssetIndex.ID == "" {
		return "legacy"
	}
	return d.AssetIndex.ID
}

// VersionType returns the release type, defaulting to "release".
func (d *Descriptor) VersionType() string {
	if d.Type == "" {
		return "release"
	}
	return d.Type
}

// ResolvedMainClass returns the main class, defaulting to the vanilla
// client entry point.
func (d *Descriptor) ResolvedMainClass() string {
	if d.MainClass == "" {
		return "net.minecraft.client.main.Main"
	}
	return d.MainClass
}
