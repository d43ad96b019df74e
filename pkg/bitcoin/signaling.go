package bitcoin

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultStacksNodeRPC is the RPC endpoint of a stacks node running next to the indexer.
const DefaultStacksNodeRPC = "http://localhost:20443"

var ErrUnknownSignaling = errors.New("unknown block signaling")

// StacksNodeConfig points block signaling at a stacks node.
type StacksNodeConfig struct {
	RPCURL        string `yaml:"rpc_url" validate:"required,url"`
	IngestionPort uint16 `yaml:"ingestion_port" validate:"required"`
}

// DefaultLocalhost returns a StacksNodeConfig for a local stacks node that
// pushes blocks to ingestionPort.
func DefaultLocalhost(ingestionPort uint16) StacksNodeConfig {
	return StacksNodeConfig{
		RPCURL:        DefaultStacksNodeRPC,
		IngestionPort: ingestionPort,
	}
}

// SignalingKind identifies the active BlockSignaling variant.
type SignalingKind int

const (
	SignalingStacks SignalingKind = iota
	SignalingZeroMQ
)

func (k SignalingKind) String() string {
	switch k {
	case SignalingStacks:
		return "stacks"
	case SignalingZeroMQ:
		return "zeromq"
	default:
		return "unknown"
	}
}

// BlockSignaling is how the node learns about new bitcoin blocks. The zero
// value is Stacks signaling with an empty node config and fails validation.
type BlockSignaling struct {
	kind   SignalingKind
	stacks StacksNodeConfig
	zmqURL string
}

// StacksSignaling returns signaling driven by a stacks node.
func StacksSignaling(node StacksNodeConfig) BlockSignaling {
	return BlockSignaling{kind: SignalingStacks, stacks: node}
}

// ZeroMQSignaling returns signaling driven by a bitcoind zmq publisher.
func ZeroMQSignaling(url string) BlockSignaling {
	return BlockSignaling{kind: SignalingZeroMQ, zmqURL: url}
}

// Kind returns the active variant.
func (b BlockSignaling) Kind() SignalingKind {
	return b.kind
}

// ExpectedStacksNode returns the stacks node config. It panics for zmq signaling.
func (b BlockSignaling) ExpectedStacksNode() StacksNodeConfig {
	if b.kind != SignalingStacks {
		panic(fmt.Sprintf("bitcoin: stacks node requested for %s signaling", b.kind))
	}

	return b.stacks
}

// ExpectedZeroMQURL returns the zmq endpoint. It panics for stacks signaling.
func (b BlockSignaling) ExpectedZeroMQURL() string {
	if b.kind != SignalingZeroMQ {
		panic(fmt.Sprintf("bitcoin: zmq url requested for %s signaling", b.kind))
	}

	return b.zmqURL
}

// Validate checks the active variant for errors.
func (b BlockSignaling) Validate() error {
	switch b.kind {
	case SignalingStacks:
		if err := validate.Struct(b.stacks); err != nil {
			return fmt.Errorf("invalid stacks node config: %w", err)
		}

		return nil
	case SignalingZeroMQ:
		if b.zmqURL == "" {
			return errors.New("zmq url is empty")
		}

		return nil
	}

	return fmt.Errorf("%w: %d", ErrUnknownSignaling, b.kind)
}

type signalingNode struct {
	Stacks *StacksNodeConfig `yaml:"stacks,omitempty"`
	ZeroMQ string            `yaml:"zeromq,omitempty"`
}

// MarshalYAML renders the signaling as a single-key mapping named after its variant.
func (b BlockSignaling) MarshalYAML() (interface{}, error) {
	switch b.kind {
	case SignalingStacks:
		node := b.stacks

		return signalingNode{Stacks: &node}, nil
	case SignalingZeroMQ:
		return signalingNode{ZeroMQ: b.zmqURL}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownSignaling, b.kind)
}

// UnmarshalYAML accepts {stacks: {...}} or {zeromq: <url>}.
func (b *BlockSignaling) UnmarshalYAML(value *yaml.Node) error {
	var node signalingNode
	if err := value.Decode(&node); err != nil {
		return fmt.Errorf("failed to decode block signaling: %w", err)
	}

	switch {
	case node.Stacks != nil && node.ZeroMQ != "":
		return fmt.Errorf("%w: both stacks and zeromq set", ErrUnknownSignaling)
	case node.Stacks != nil:
		*b = StacksSignaling(*node.Stacks)
	case node.ZeroMQ != "":
		*b = ZeroMQSignaling(node.ZeroMQ)
	default:
		return fmt.Errorf("%w: expected stacks or zeromq", ErrUnknownSignaling)
	}

	return nil
}
