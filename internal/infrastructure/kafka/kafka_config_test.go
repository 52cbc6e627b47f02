package publisher

import (
	"testing"

	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMechanism(t *testing.T) {
	m, err := KafkaConfig{}.mechanism()
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = KafkaConfig{Username: "u", Password: "p"}.mechanism()
	require.NoError(t, err)
	assert.Equal(t, plain.Mechanism{Username: "u", Password: "p"}, m)

	m, err = KafkaConfig{Username: "u", Password: "p", Mechanism: "SCRAM-SHA-512"}.mechanism()
	require.NoError(t, err)
	assert.Equal(t, "SCRAM-SHA-512", m.Name())

	_, err = KafkaConfig{Username: "u", Mechanism: "gssapi"}.mechanism()
	assert.Error(t, err)
}

func TestTLSConfig(t *testing.T) {
	assert.Nil(t, KafkaConfig{}.tlsConfig())
	assert.NotNil(t, KafkaConfig{TLSEnabled: true}.tlsConfig())
}
