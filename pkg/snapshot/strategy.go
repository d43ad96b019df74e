package snapshot

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultMainnetArchive is the base URL of the published mainnet index archive.
const DefaultMainnetArchive = "https://archive.hiro.so/mainnet/ordhook/mainnet-ordhook-sqlite-latest"

const (
	archiveSuffix  = ".tar.gz"
	checksumSuffix = ".sha256"
)

var (
	ErrEmptyBaseURL    = errors.New("snapshot download base url is empty")
	ErrUnknownStrategy = errors.New("unknown snapshot strategy")
)

// Kind identifies the active Strategy variant.
type Kind int

const (
	KindBuild Kind = iota
	KindDownload
)

func (k Kind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindDownload:
		return "download"
	default:
		return "unknown"
	}
}

// Strategy selects how node state is bootstrapped. The zero value is Build.
type Strategy struct {
	kind    Kind
	baseURL string
}

// Build returns a strategy that indexes the chain locally from genesis.
func Build() Strategy {
	return Strategy{kind: KindBuild}
}

// Download returns a strategy that fetches a prebuilt archive rooted at baseURL.
func Download(baseURL string) Strategy {
	return Strategy{kind: KindDownload, baseURL: baseURL}
}

// Kind returns the active variant.
func (s Strategy) Kind() Kind {
	return s.kind
}

// ShouldBootstrapThroughDownload reports whether the Download variant is active.
func (s Strategy) ShouldBootstrapThroughDownload() bool {
	return s.kind == KindDownload
}

// RemoteArchiveURL returns the archive location. It panics under Build.
func (s Strategy) RemoteArchiveURL() string {
	return s.expectedBaseURL() + archiveSuffix
}

// RemoteSHA256URL returns the checksum sidecar location. It panics under Build.
func (s Strategy) RemoteSHA256URL() string {
	return s.expectedBaseURL() + checksumSuffix
}

func (s Strategy) expectedBaseURL() string {
	switch s.kind {
	case KindDownload:
		return s.baseURL
	case KindBuild:
		panic("snapshot: remote url requested for a build strategy")
	}

	panic(fmt.Sprintf("snapshot: unhandled strategy kind %d", s.kind))
}

// Validate checks the strategy for errors.
func (s Strategy) Validate() error {
	switch s.kind {
	case KindBuild:
		return nil
	case KindDownload:
		if s.baseURL == "" {
			return ErrEmptyBaseURL
		}

		return nil
	}

	return fmt.Errorf("%w: %d", ErrUnknownStrategy, s.kind)
}

func (s Strategy) String() string {
	if s.kind == KindDownload {
		return fmt.Sprintf("download(%s)", s.baseURL)
	}

	return s.kind.String()
}

type downloadNode struct {
	Download string `yaml:"download"`
}

// MarshalYAML renders Build as a scalar and Download as a mapping.
func (s Strategy) MarshalYAML() (interface{}, error) {
	if s.kind == KindDownload {
		return downloadNode{Download: s.baseURL}, nil
	}

	return s.kind.String(), nil
}

// UnmarshalYAML accepts either "build" or {download: <url>}.
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value != KindBuild.String() {
			return fmt.Errorf("%w: %q", ErrUnknownStrategy, value.Value)
		}

		*s = Build()

		return nil
	case yaml.MappingNode:
		var node downloadNode
		if err := value.Decode(&node); err != nil {
			return fmt.Errorf("failed to decode download strategy: %w", err)
		}

		if node.Download == "" {
			return ErrEmptyBaseURL
		}

		*s = Download(node.Download)

		return nil
	default:
		return fmt.Errorf("%w: unexpected yaml node at line %d", ErrUnknownStrategy, value.Line)
	}
}
