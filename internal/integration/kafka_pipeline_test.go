//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/metar-reader/internal/adapter/kafka"
	"github.com/couchcryptid/metar-reader/internal/config"
	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/observability"
	"github.com/couchcryptid/metar-reader/internal/pipeline"
)

const (
	testSourceTopic = "test-source"
	testSinkTopic   = "test-sink"
)

// decodedMessage holds a deserialized message read from the sink topic.
type decodedMessage struct {
	Report  domain.DecodedReport
	Key     string
	Headers map[string]string
}

// readDecoded reads a single message from the sink consumer and deserializes it.
func readDecoded(ctx context.Context, t *testing.T, consumer *kafkago.Reader) decodedMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var report domain.DecodedReport
	require.NoError(t, json.Unmarshal(msg.Value, &report), "unmarshal sink message")

	return decodedMessage{
		Report:  report,
		Key:     string(msg.Key),
		Headers: headers,
	}
}

func testConfig(broker, group string) *config.Config {
	return &config.Config{
		KafkaEnabled:       true,
		KafkaBrokers:       []string{broker},
		KafkaSourceTopic:   testSourceTopic,
		KafkaSinkTopic:     testSinkTopic,
		KafkaGroupID:       fmt.Sprintf("%s-%d", group, time.Now().UnixNano()),
		BatchFlushInterval: 5 * time.Second,
	}
}

func sinkConsumer(t *testing.T, broker string) *kafkago.Reader {
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

func publish(ctx context.Context, t *testing.T, broker string, msgs ...kafkago.Message) {
	producer := &kafkago.Writer{
		Addr:  kafkago.TCP(broker),
		Topic: testSourceTopic,
	}
	t.Cleanup(func() { _ = producer.Close() })
	require.NoError(t, producer.WriteMessages(ctx, msgs...))
}

// TestKafkaReaderWriter verifies the adapter layer: kafka.Reader (extractor) and
// kafka.Writer (loader) correctly round-trip a report through Kafka.
func TestKafkaReaderWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-reader")

	report := loadMockData(t)[0]
	publish(ctx, t, broker, kafkago.Message{Key: []byte("KJFK"), Value: []byte(report)})

	// Retry because the consumer group may need time to rebalance before
	// partitions are assigned and messages become available.
	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	var batch []domain.RawEvent
	for {
		var err error
		batch, err = reader.ExtractBatch(ctx, 1)
		require.NoError(t, err)
		if len(batch) > 0 {
			break
		}
		if ctx.Err() != nil {
			t.Fatal("timed out waiting for message from source topic")
		}
	}
	require.Len(t, batch, 1)
	raw := batch[0]
	assert.Equal(t, []byte("KJFK"), raw.Key)
	assert.Equal(t, []byte(report), raw.Value)
	assert.Equal(t, testSourceTopic, raw.Topic)
	require.NotNil(t, raw.Commit, "commit callback should be set")
	require.NoError(t, raw.Commit(ctx))

	transformer := pipeline.NewTransformer(observability.NewMetricsForTesting(), discardLogger())
	out, err := transformer.Transform(ctx, raw)
	require.NoError(t, err)

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })
	require.NoError(t, writer.LoadBatch(ctx, []domain.OutputEvent{out}))

	dm := readDecoded(ctx, t, sinkConsumer(t, broker))
	assert.Equal(t, "KJFK", dm.Key)
	assert.Equal(t, "KJFK", dm.Headers["station"])
	_, err = time.Parse(time.RFC3339, dm.Headers["processed_at"])
	assert.NoError(t, err, "processed_at should be valid RFC3339")
	assert.Equal(t, domain.Decode(report), dm.Report)
}

// TestPipelineEndToEnd wires the full relay (Reader → Transformer → Writer) with
// real Kafka and verifies that every sample report is decoded.
func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-pipeline")

	reports := loadMockData(t)
	msgs := make([]kafkago.Message, 0, len(reports))
	for _, r := range reports {
		msgs = append(msgs, kafkago.Message{Value: []byte(r)})
	}
	publish(ctx, t, broker, msgs...)

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	transformer := pipeline.NewTransformer(metrics, discardLogger())
	p := pipeline.New(reader, transformer, writer, discardLogger(), metrics, 50)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)
	received := make(map[string]decodedMessage, len(reports))
	for len(received) < len(reports) {
		dm := readDecoded(ctx, t, consumer)
		received[dm.Report.RawMETAR] = dm
	}

	pipelineCancel()
	require.NoError(t, <-errCh)
	assert.NoError(t, p.CheckReadiness(ctx))

	for _, r := range reports {
		dm, ok := received[r]
		require.True(t, ok, "missing decoded report for %q", r)
		assert.Equal(t, domain.Decode(r), dm.Report)
		assert.Equal(t, dm.Report.Airport, dm.Key)
		assert.Equal(t, dm.Report.Airport, dm.Headers["station"])
		assert.NotEmpty(t, dm.Headers["processed_at"])
	}

	snow := received[reports[4]]
	assert.Equal(t, "KDEN", snow.Report.Airport)
	assert.Equal(t, "Weather: heavy snow", snow.Report.Weather)
	assert.True(t, strings.HasPrefix(snow.Report.Summary, "The sky is overcast"))
}

// TestPipelineBlankMessage verifies that a blank message (poison pill) is
// skipped and the relay continues with valid reports.
func TestPipelineBlankMessage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)
	cfg := testConfig(broker, "test-poison")

	report := loadMockData(t)[1]
	publish(ctx, t, broker,
		kafkago.Message{Key: []byte("bad"), Value: []byte("   ")},
		kafkago.Message{Key: []byte("good"), Value: []byte(report)},
	)

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	p := pipeline.New(reader, pipeline.NewTransformer(metrics, discardLogger()), writer, discardLogger(), metrics, 50)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)
	dm := readDecoded(ctx, t, consumer)
	assert.Equal(t, "KLAX", dm.Report.Airport)

	// Verify no second message arrives (the blank message was skipped).
	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	_, err := consumer.ReadMessage(readCtx)
	readCancel()
	assert.Error(t, err, "expected no second message on sink topic")

	pipelineCancel()
	require.NoError(t, <-errCh)
}
