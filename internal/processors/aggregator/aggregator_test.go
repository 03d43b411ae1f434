package aggregator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	k "device-state-pipeline/internal/kafka"
	"device-state-pipeline/internal/window"
)

var aggBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAggregator(t *testing.T, cfg Config) (*Aggregator, *k.MockReader, *MockstatePersister) {
	reader := k.NewMockReader(t)
	persister := NewMockstatePersister(t)

	cfg.Brokers = "localhost:9092"
	cfg.ConsumerGroupID = "test-group"
	cfg.ConsumerTopic = "test-topic"
	if cfg.WindowLength == 0 {
		cfg.WindowLength = 5 * time.Second
	}
	cfg.Persister = persister
	cfg.MetricsGroup = "test"

	agg := New(cfg)
	agg.reader = reader
	agg.now = func() time.Time { return aggBase }
	return agg, reader, persister
}

func encodedMeasurement(t *testing.T, date time.Time) kafka.Message {
	payload, err := k.EncodeEnvelope(k.Envelope{
		Kind:               k.KindMeasurement,
		EventID:            uuid.New(),
		DeviceID:           uuid.New(),
		DeviceAssignmentID: uuid.New(),
		EventDate:          date,
		Measurement:        &k.Measurement{Name: "engine.temp", Value: 21.5},
	})
	assert.NoError(t, err)
	return kafka.Message{Value: payload}
}

func Test_ProcessMessage_FoldsAndCommits(t *testing.T) {
	agg, reader, _ := newTestAggregator(t, Config{})

	// Event lands in the currently open window, so nothing is persisted.
	reader.EXPECT().FetchMessage(mock.Anything).Return(encodedMeasurement(t, aggBase), nil)
	reader.EXPECT().CommitMessages(mock.Anything, mock.Anything).Return(nil)

	err := agg.ProcessMessage(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, agg.windows.Len())
}

func Test_ProcessMessage_PersistsClosedWindowOnIdle(t *testing.T) {
	agg, reader, persister := newTestAggregator(t, Config{})

	e := k.Envelope{
		Kind:               k.KindMeasurement,
		EventID:            uuid.New(),
		DeviceID:           uuid.New(),
		DeviceAssignmentID: uuid.New(),
		EventDate:          aggBase.Add(-10 * time.Second),
		Measurement:        &k.Measurement{Name: "engine.temp", Value: 21.5},
	}
	_, ok := agg.windows.Fold(e)
	assert.True(t, ok)

	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, context.DeadlineExceeded)
	persister.EXPECT().Persist(mock.Anything, mock.MatchedBy(func(em window.Emission) bool {
		return em.DeviceID == e.DeviceID && em.Accumulator.Count() == 1
	})).Return(nil)

	err := agg.ProcessMessage(context.Background())
	assert.NoError(t, err)
}

func Test_ProcessMessage_EmitOnUpdate(t *testing.T) {
	agg, reader, persister := newTestAggregator(t, Config{EmitOnUpdate: true})

	reader.EXPECT().FetchMessage(mock.Anything).Return(encodedMeasurement(t, aggBase), nil)
	reader.EXPECT().CommitMessages(mock.Anything, mock.Anything).Return(nil)
	persister.EXPECT().Persist(mock.Anything, mock.MatchedBy(func(em window.Emission) bool {
		return em.Accumulator.Count() == 1
	})).Return(nil)

	err := agg.ProcessMessage(context.Background())
	assert.NoError(t, err)
}

func Test_ProcessMessage_SkipsBadPayload(t *testing.T) {
	agg, reader, _ := newTestAggregator(t, Config{})

	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil)
	reader.EXPECT().CommitMessages(mock.Anything, mock.Anything).Return(nil)

	err := agg.ProcessMessage(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, agg.windows.Len())
}

func Test_ProcessMessage_SkipsMissingAssignment(t *testing.T) {
	agg, reader, _ := newTestAggregator(t, Config{})

	payload, err := k.EncodeEnvelope(k.Envelope{
		Kind:      k.KindMeasurement,
		EventID:   uuid.New(),
		DeviceID:  uuid.New(),
		EventDate: aggBase,
	})
	assert.NoError(t, err)

	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{Value: payload}, nil)
	reader.EXPECT().CommitMessages(mock.Anything, mock.Anything).Return(nil)

	err = agg.ProcessMessage(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, agg.windows.Len())
}

func Test_ProcessMessage_SkipsUnknownKind(t *testing.T) {
	agg, reader, _ := newTestAggregator(t, Config{})

	payload, err := k.EncodeEnvelope(k.Envelope{
		Kind:               "command-invocation",
		EventID:            uuid.New(),
		DeviceID:           uuid.New(),
		DeviceAssignmentID: uuid.New(),
		EventDate:          aggBase,
	})
	assert.NoError(t, err)

	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{Value: payload}, nil)
	reader.EXPECT().CommitMessages(mock.Anything, mock.Anything).Return(nil)

	err = agg.ProcessMessage(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, agg.windows.Len())
}

func Test_ProcessMessage_ReadError(t *testing.T) {
	agg, reader, _ := newTestAggregator(t, Config{})

	readErr := errors.New("broker unreachable")
	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, readErr)

	err := agg.ProcessMessage(context.Background())
	assert.ErrorIs(t, err, ErrReadMessage)
	assert.ErrorIs(t, err, readErr)
}
