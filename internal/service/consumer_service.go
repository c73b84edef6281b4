package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"
	"github.com/dellis317/provocations/pkg/embedding"
	"github.com/dellis317/provocations/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pgvector/pgvector-go"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService embeds reference documents after upload so similarity
// search can find them. Runs off the request path; upload latency does
// not pay for embedding calls.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedReferenceMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // malformed, retrying won't help
		return
	}

	log.Printf("[INFO] Processing embedding for reference %s", payload.ReferenceId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	ref, err := uow.ReferenceRepository().FindOne(ctx, specification.ByID{ID: payload.ReferenceId})
	if err != nil {
		log.Printf("[ERROR] Failed to get reference %s: %v", payload.ReferenceId, err)
		msg.Nack()
		return
	}
	if ref == nil {
		log.Printf("[WARN] Reference not found (deleted?): %s", payload.ReferenceId)
		msg.Ack()
		return
	}

	content := "Reference (" + string(ref.Type) + "): " + ref.Name + "\n\n" + ref.Content

	// 1500 chars per chunk with 200 overlap keeps chunks well inside
	// embedding context limits
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Reference %s split into %d chunks", payload.ReferenceId, len(chunks))

	type chunkEmbedding struct {
		index  int
		chunk  string
		vector pgvector.Vector
	}
	var embeddings []chunkEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of reference %s: %v", i, payload.ReferenceId, err)
			msg.Nack()
			return
		}
		embeddings = append(embeddings, chunkEmbedding{
			index:  i,
			chunk:  chunk,
			vector: pgvector.NewVector(res.Embedding.Values),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.ReferenceEmbeddingRepository().DeleteByReferenceId(ctx, ref.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	for _, e := range embeddings {
		if err := uow.ReferenceEmbeddingRepository().Create(ctx, ref.Id, e.index, e.chunk, e.vector); err != nil {
			log.Printf("[ERROR] Failed to store embedding chunk %d: %v", e.index, err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Reference embedded: %d chunks for %s", len(embeddings), payload.ReferenceId)
	msg.Ack()
}
