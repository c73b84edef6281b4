package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"
	"github.com/dellis317/provocations/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.LensRepository())
	assert.NotNil(t, uow.ReferenceEmbeddingRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})

	t.Run("Version Append And Trim", func(t *testing.T) {
		ctx := context.Background()

		userId := uuid.New()
		user := &entity.User{
			Id:        userId,
			Email:     "test-integration-" + uuid.New().String() + "@example.com",
			FullName:  "Integration Test User",
			CreatedAt: time.Now(),
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		doc := &entity.Document{
			Id:          uuid.New(),
			UserId:      userId,
			Title:       "Integration Doc",
			RawText:     "original",
			Objective:   "test persistence",
			CurrentText: "original",
			CreatedAt:   time.Now(),
		}
		assert.NoError(t, uow.DocumentRepository().Create(ctx, doc))

		for i := 1; i <= 3; i++ {
			v := &entity.DocumentVersion{
				Id:            uuid.New(),
				DocumentId:    doc.Id,
				VersionNumber: i,
				Content:       "content",
				Description:   "step",
				CreatedAt:     time.Now(),
			}
			assert.NoError(t, uow.DocumentVersionRepository().Create(ctx, v))
		}

		count, err := uow.DocumentVersionRepository().Count(ctx, specification.ByDocumentID{DocumentID: doc.Id})
		assert.NoError(t, err)
		assert.EqualValues(t, 3, count)

		// History window trims to the newest N
		for i := 0; i < 15; i++ {
			e := &entity.EditHistoryEntry{
				Id:              uuid.New(),
				DocumentId:      doc.Id,
				Instruction:     "instruction",
				InstructionType: "general",
				Summary:         "summary",
				CreatedAt:       time.Now(),
			}
			assert.NoError(t, uow.EditHistoryRepository().Create(ctx, e))
		}
		assert.NoError(t, uow.EditHistoryRepository().TrimToWindow(ctx, doc.Id, 10))

		entries, err := uow.EditHistoryRepository().FindAll(ctx, specification.ByDocumentID{DocumentID: doc.Id})
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(entries), 10)

		// Cleanup
		assert.NoError(t, uow.DocumentRepository().Delete(ctx, doc.Id))
	})
}
