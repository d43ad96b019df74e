package bitcoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFirstInscriptionHeight(t *testing.T) {
	expected := map[Network]uint64{
		Mainnet: 767430,
		Regtest: 1,
		Testnet: 2413343,
		Signet:  112402,
	}

	for _, n := range Networks() {
		height, ok := expected[n]
		require.True(t, ok, "missing expected height for %s", n)
		assert.Equal(t, height, FirstInscriptionHeight(n), n.String())
	}

	assert.Len(t, expected, len(Networks()))
}

func TestFirstInscriptionHeightUnknownNetworkPanics(t *testing.T) {
	assert.Panics(t, func() { FirstInscriptionHeight(Network(42)) })
}

func TestParseNetwork(t *testing.T) {
	for _, n := range Networks() {
		parsed, err := ParseNetwork(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}

	_, err := ParseNetwork("litecoin")
	assert.ErrorIs(t, err, ErrUnknownNetwork)

	for _, n := range StacksNetworks() {
		parsed, err := ParseStacksNetwork(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}

	_, err = ParseStacksNetwork("nakamoto")
	assert.ErrorIs(t, err, ErrUnknownStacksNetwork)
}

func TestBlockSignalingAccessors(t *testing.T) {
	stacks := StacksSignaling(DefaultLocalhost(20455))

	assert.Equal(t, SignalingStacks, stacks.Kind())
	assert.Equal(t, StacksNodeConfig{RPCURL: "http://localhost:20443", IngestionPort: 20455}, stacks.ExpectedStacksNode())
	assert.Panics(t, func() { _ = stacks.ExpectedZeroMQURL() })
	assert.NoError(t, stacks.Validate())

	zmq := ZeroMQSignaling("tcp://127.0.0.1:18543")

	assert.Equal(t, SignalingZeroMQ, zmq.Kind())
	assert.Equal(t, "tcp://127.0.0.1:18543", zmq.ExpectedZeroMQURL())
	assert.Panics(t, func() { _ = zmq.ExpectedStacksNode() })
	assert.NoError(t, zmq.Validate())

	assert.Error(t, BlockSignaling{}.Validate())
	assert.Error(t, ZeroMQSignaling("").Validate())
}

func TestParametersYAML(t *testing.T) {
	params := Parameters{
		BitcoindRPCURL:      "http://0.0.0.0:8332",
		BitcoindRPCUsername: "user",
		BitcoindRPCPassword: "pass",
		BlockSignaling:      StacksSignaling(DefaultLocalhost(20455)),
		BitcoinNetwork:      Mainnet,
		StacksNetwork:       StacksMainnet,
	}

	out, err := yaml.Marshal(params)
	require.NoError(t, err)

	var decoded Parameters
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, params, decoded)
	assert.NoError(t, decoded.Validate())

	raw := []byte("bitcoin_network: signet\nbitcoin_block_signaling:\n  zeromq: tcp://127.0.0.1:18543\n")
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, Signet, decoded.BitcoinNetwork)
	assert.Equal(t, "tcp://127.0.0.1:18543", decoded.BlockSignaling.ExpectedZeroMQURL())

	assert.Error(t, yaml.Unmarshal([]byte("bitcoin_network: dogecoin\n"), &decoded))
	assert.ErrorIs(t, yaml.Unmarshal([]byte("bitcoin_block_signaling: {}\n"), &decoded), ErrUnknownSignaling)
}

func TestParametersValidate(t *testing.T) {
	params := Parameters{
		BitcoindRPCURL: "not a url",
		BlockSignaling: StacksSignaling(DefaultLocalhost(20455)),
	}
	assert.Error(t, params.Validate())

	params.BitcoindRPCURL = "http://0.0.0.0:18443"
	assert.NoError(t, params.Validate())

	params.BitcoinNetwork = Network(7)
	assert.ErrorIs(t, params.Validate(), ErrUnknownNetwork)
}
