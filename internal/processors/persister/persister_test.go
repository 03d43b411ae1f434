package persister

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
)

func newTestPersister(t *testing.T) (*Persister, *k.MockReader, *k.MockWriter, *MockeventStore) {
	reader := k.NewMockReader(t)
	writer := k.NewMockWriter(t)
	events := NewMockeventStore(t)

	p := New(Config{
		Brokers:         "localhost:9092",
		ConsumerGroupID: "test-group",
		ConsumerTopic:   "test-topic",
		PublisherTopic:  "test-topic-persisted",
		Workers:         2,
		Events:          events,
	})
	p.reader = reader
	p.writer = writer
	return p, reader, writer, events
}

func validEnvelope() k.Envelope {
	return k.Envelope{
		Kind:               k.KindMeasurement,
		EventID:            uuid.New(),
		DeviceID:           uuid.New(),
		DeviceAssignmentID: uuid.New(),
		EventDate:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Measurement:        &k.Measurement{Name: "engine.temp", Value: 21.5},
	}
}

func Test_Handle_PersistsAndRepublishes(t *testing.T) {
	p, _, writer, events := newTestPersister(t)
	e := validEnvelope()
	payload, err := k.EncodeEnvelope(e)
	assert.NoError(t, err)

	events.EXPECT().InsertEvent(mock.Anything, e).Return(nil)
	writer.EXPECT().WriteMessages(mock.Anything, mock.MatchedBy(func(m kafka.Message) bool {
		return string(m.Key) == e.DeviceID.String()
	})).Return(nil)

	p.handle(context.Background(), kafka.Message{Value: payload})
}

func Test_Handle_SkipsBadPayload(t *testing.T) {
	p, _, _, _ := newTestPersister(t)

	// No store or writer expectations; any call would fail the test.
	p.handle(context.Background(), kafka.Message{Value: []byte("not json")})
}

func Test_Handle_SkipsMissingAssignment(t *testing.T) {
	p, _, _, _ := newTestPersister(t)
	e := validEnvelope()
	e.DeviceAssignmentID = uuid.Nil
	payload, err := k.EncodeEnvelope(e)
	assert.NoError(t, err)

	p.handle(context.Background(), kafka.Message{Value: payload})
}

func Test_Handle_StopsOnStoreError(t *testing.T) {
	p, _, _, events := newTestPersister(t)
	e := validEnvelope()
	payload, err := k.EncodeEnvelope(e)
	assert.NoError(t, err)

	events.EXPECT().InsertEvent(mock.Anything, e).Return(errors.New("connection reset"))

	// The writer has no expectations; a failed insert must not republish.
	p.handle(context.Background(), kafka.Message{Value: payload})
}

func Test_ProcessMessage_DispatchesToPool(t *testing.T) {
	p, reader, writer, events := newTestPersister(t)
	e := validEnvelope()
	payload, err := k.EncodeEnvelope(e)
	assert.NoError(t, err)

	reader.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{Value: payload}, nil)
	events.EXPECT().InsertEvent(mock.Anything, e).Return(nil)
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(nil)

	err = p.ProcessMessage(context.Background())
	assert.NoError(t, err)
	p.wg.Wait()
}

func Test_ProcessMessage_ReadError(t *testing.T) {
	p, reader, _, _ := newTestPersister(t)

	readErr := errors.New("broker unreachable")
	reader.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{}, readErr)

	err := p.ProcessMessage(context.Background())
	assert.ErrorIs(t, err, ErrReadMessage)
	assert.ErrorIs(t, err, readErr)
}

func Test_Normalize(t *testing.T) {
	e := k.Envelope{DeviceAssignmentID: uuid.New()}
	err := normalize(&e)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, e.EventID)
	assert.False(t, e.EventDate.IsZero())

	e = validEnvelope()
	wantID := e.EventID
	wantDate := e.EventDate
	err = normalize(&e)
	assert.NoError(t, err)
	assert.Equal(t, wantID, e.EventID)
	assert.Equal(t, wantDate, e.EventDate)
}
