package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// TripConsumer invalidates cached payout summaries whenever a trip is
// recorded anywhere in the system, so replicas without the originating
// request still converge.
type TripConsumer struct {
	Log   log.Log
	Redis redis.UniversalClient
}

func NewTripConsumer(logger log.Log, redisClient redis.UniversalClient) *TripConsumer {
	return &TripConsumer{
		Log:   logger,
		Redis: redisClient,
	}
}

func (c *TripConsumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *TripConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (c *TripConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			var event model.TripRecordedEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				c.Log.Error("trip-consumer", fmt.Sprintf("bad event payload: %v", err), "ConsumeClaim", string(message.Key))
				session.MarkMessage(message, "")
				continue
			}

			key := fmt.Sprintf("PAYOUT:SUMMARY:%s:%s:%s", event.OwnerID, event.DriverID, event.TripDate.Format("2006-01"))
			if err := c.Redis.Del(session.Context(), key).Err(); err != nil {
				c.Log.Error("trip-consumer", fmt.Sprintf("invalidate summary: %v", err), "ConsumeClaim", key)
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// ConsumeTripRecorded joins the consumer group and loops until ctx is
// canceled. Rebalances return from Consume and the loop rejoins.
func ConsumeTripRecorded(ctx context.Context, v *viper.Viper, logger log.Log, redisClient redis.UniversalClient) error {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	group, err := sarama.NewConsumerGroup(
		[]string{v.GetString("kafka.broker")},
		v.GetString("kafka.consumer_group"),
		config,
	)
	if err != nil {
		return fmt.Errorf("join consumer group: %w", err)
	}
	defer group.Close()

	handler := NewTripConsumer(logger, redisClient)
	for {
		if err := group.Consume(ctx, []string{"trip-recorded"}, handler); err != nil {
			logger.Error("trip-consumer", fmt.Sprintf("consume: %v", err), "ConsumeTripRecorded", "")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
