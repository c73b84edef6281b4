package service

import (
	"context"
	"log"
	"time"

	"github.com/dellis317/provocations/internal/dto"
	"github.com/dellis317/provocations/internal/entity"
	"github.com/dellis317/provocations/internal/pkg/logger"
	"github.com/dellis317/provocations/internal/repository/memory"
	"github.com/dellis317/provocations/internal/repository/specification"
	"github.com/dellis317/provocations/internal/repository/unitofwork"
	"github.com/dellis317/provocations/pkg/embedding"
	"github.com/dellis317/provocations/pkg/engine/analyze"
	"github.com/dellis317/provocations/pkg/engine/classify"
	"github.com/dellis317/provocations/pkg/engine/contextual"
	"github.com/dellis317/provocations/pkg/engine/diffview"
	"github.com/dellis317/provocations/pkg/engine/evolve"
	"github.com/dellis317/provocations/pkg/engine/history"
	"github.com/dellis317/provocations/pkg/engine/lens"
	"github.com/dellis317/provocations/pkg/engine/provoke"
	"github.com/dellis317/provocations/pkg/events"
	"github.com/dellis317/provocations/pkg/nats"
	"github.com/dellis317/provocations/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

const (
	relevantReferenceLimit = 3
	originalVersionNote    = "Original document"
)

type IWorkspaceService interface {
	Analyze(ctx context.Context, userId, documentId uuid.UUID) (*dto.AnalyzeDocumentResponse, error)
	Evolve(ctx context.Context, userId uuid.UUID, req *dto.EvolveDocumentRequest) (*dto.EvolveDocumentResponse, error)
	Lenses(ctx context.Context, userId, documentId uuid.UUID) ([]dto.LensResponse, error)
	ActivateLens(ctx context.Context, userId, lensId uuid.UUID) error
	Versions(ctx context.Context, userId, documentId uuid.UUID) ([]dto.VersionResponse, error)
	Diff(ctx context.Context, userId, documentId uuid.UUID, from, to int) (*dto.DiffResponse, error)
}

// workspaceService drives the analyze and evolve flows. Every LLM step
// goes through the engine packages; this layer owns persistence,
// ownership checks, and session stickiness.
type workspaceService struct {
	uowFactory        unitofwork.RepositoryFactory
	classifier        *classify.Classifier
	evolver           *evolve.Evolver
	analyzer          *analyze.Analyzer
	lensGenerator     *lens.Generator
	provokeGenerator  *provoke.Generator
	embeddingProvider embedding.EmbeddingProvider
	workspaceRepo     *memory.WorkspaceRepository
	eventPublisher    *nats.Publisher
	logger            logger.ILogger
	llmTraffic        *log.Logger
}

func NewWorkspaceService(
	uowFactory unitofwork.RepositoryFactory,
	classifier *classify.Classifier,
	evolver *evolve.Evolver,
	analyzer *analyze.Analyzer,
	lensGenerator *lens.Generator,
	provokeGenerator *provoke.Generator,
	embeddingProvider embedding.EmbeddingProvider,
	workspaceRepo *memory.WorkspaceRepository,
	eventPublisher *nats.Publisher,
	log logger.ILogger,
	llmTraffic *log.Logger,
) IWorkspaceService {
	return &workspaceService{
		uowFactory:        uowFactory,
		classifier:        classifier,
		evolver:           evolver,
		analyzer:          analyzer,
		lensGenerator:     lensGenerator,
		provokeGenerator:  provokeGenerator,
		embeddingProvider: embeddingProvider,
		workspaceRepo:     workspaceRepo,
		eventPublisher:    eventPublisher,
		logger:            log,
		llmTraffic:        llmTraffic,
	}
}

// Analyze generates the lens readings and provocations for a document
// and seeds version 1 if the document has no version history yet.
func (s *workspaceService) Analyze(ctx context.Context, userId, documentId uuid.UUID) (*dto.AnalyzeDocumentResponse, error) {
	doc, err := s.ownedDocument(ctx, userId, documentId)
	if err != nil {
		return nil, err
	}

	lenses, err := s.lensGenerator.Generate(ctx, doc.CurrentText, doc.Objective)
	if err != nil {
		s.logger.Error("workspace_service", "lens generation failed", map[string]interface{}{
			"document_id": documentId.String(), "error": err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusBadGateway, "analysis failed, please retry")
	}

	provocations, err := s.provokeGenerator.Generate(ctx, doc.CurrentText, doc.Objective)
	if err != nil {
		s.logger.Error("workspace_service", "provocation generation failed", map[string]interface{}{
			"document_id": documentId.String(), "error": err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusBadGateway, "analysis failed, please retry")
	}

	now := time.Now()
	lensEntities := make([]*entity.Lens, 0, len(lenses))
	for _, l := range lenses {
		lensEntities = append(lensEntities, &entity.Lens{
			Id:         uuid.New(),
			DocumentId: doc.Id,
			UserId:     userId,
			Type:       entity.LensType(l.Type),
			Title:      l.Title,
			Summary:    l.Summary,
			KeyPoints:  l.KeyPoints,
			CreatedAt:  now,
		})
	}

	provEntities := make([]*entity.Provocation, 0, len(provocations))
	for _, p := range provocations {
		provEntities = append(provEntities, &entity.Provocation{
			Id:            uuid.New(),
			DocumentId:    doc.Id,
			UserId:        userId,
			Type:          entity.ProvocationType(p.Type),
			Title:         p.Title,
			Content:       p.Content,
			SourceExcerpt: p.SourceExcerpt,
			Status:        entity.ProvocationPending,
			CreatedAt:     now,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.LensRepository().CreateAll(ctx, lensEntities); err != nil {
		return nil, err
	}
	if err := uow.ProvocationRepository().CreateAll(ctx, provEntities); err != nil {
		return nil, err
	}

	versionCount, err := uow.DocumentVersionRepository().Count(ctx, specification.ByDocumentID{DocumentID: doc.Id})
	if err != nil {
		return nil, err
	}
	if versionCount == 0 {
		v := &entity.DocumentVersion{
			Id:            uuid.New(),
			DocumentId:    doc.Id,
			VersionNumber: 1,
			Content:       doc.CurrentText,
			Description:   originalVersionNote,
			CreatedAt:     now,
		}
		if err := uow.DocumentVersionRepository().Create(ctx, v); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewAnalysisCompleted(userId.String(), documentId.String(), len(lensEntities)))
	s.publishEvent(ctx, events.NewProvocationGenerated(userId.String(), documentId.String(), len(provEntities)))

	return &dto.AnalyzeDocumentResponse{
		Lenses:       mapLensResponses(lensEntities),
		Provocations: mapProvocationResponses(provEntities),
	}, nil
}

// Evolve runs the full pipeline: classify the instruction, assemble
// prompt context, generate the new text, analyze the change, then
// persist the version, document text, and history window in one
// transaction.
func (s *workspaceService) Evolve(ctx context.Context, userId uuid.UUID, req *dto.EvolveDocumentRequest) (*dto.EvolveDocumentResponse, error) {
	doc, err := s.ownedDocument(ctx, userId, req.DocumentId)
	if err != nil {
		return nil, err
	}

	instrType := s.classifier.Classify(req.Instruction)

	tone, targetLength, activeLensId := s.resolveSessionDefaults(doc, req)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := s.loadHistory(ctx, uow, doc.Id)
	if err != nil {
		return nil, err
	}

	references := s.relevantReferences(ctx, uow, userId, req.Instruction)

	activeLensType, err := s.resolveActiveLens(ctx, uow, doc.Id, activeLensId)
	if err != nil {
		return nil, err
	}

	provocation, err := s.resolveProvocation(ctx, uow, doc.Id, req.ProvocationId)
	if err != nil {
		return nil, err
	}

	builder := &contextual.Builder{
		InstructionType: instrType,
		History:         entries,
		References:      references,
		ActiveLensType:  activeLensType,
		Provocation:     provocation,
		Tone:            tone,
		TargetLength:    targetLength,
	}
	contextBlock := builder.Build()

	evolveReq := evolve.Request{
		Document:    doc.CurrentText,
		Selection:   req.SelectedText,
		Instruction: req.Instruction,
		Objective:   doc.Objective,
		Context:     contextBlock,
	}

	s.logTraffic("EVOLVE REQUEST document=%s type=%s instruction=%q\n--- CONTEXT ---\n%s", doc.Id, instrType, req.Instruction, contextBlock)

	evolved, err := s.evolver.Evolve(ctx, evolveReq)
	if err != nil {
		s.logger.Error("workspace_service", "evolve call failed", map[string]interface{}{
			"document_id": doc.Id.String(), "error": err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusBadGateway, "failed to evolve document: "+err.Error())
	}

	s.logTraffic("EVOLVE RESPONSE document=%s\n%s", doc.Id, evolved)

	analysis := s.analyzer.Analyze(ctx, doc.CurrentText, evolved, req.Instruction)

	versionNumber, err := s.persistEvolution(ctx, uow, doc, req, instrType, evolved, analysis)
	if err != nil {
		return nil, err
	}

	s.workspaceRepo.Save(&store.WorkspaceSession{
		DocumentID:   doc.Id.String(),
		UserID:       userId.String(),
		ActiveLensID: uuidString(activeLensId),
		Tone:         tone,
		TargetLength: targetLength,
		LastQuery:    req.Instruction,
	})

	s.publishEvent(ctx, events.NewDocumentEvolved(userId.String(), doc.Id.String(), req.Instruction, analysis.Summary, versionNumber))

	return &dto.EvolveDocumentResponse{
		EvolvedText:     evolved,
		InstructionType: string(instrType),
		Analysis:        analysis,
		VersionNumber:   versionNumber,
	}, nil
}

func (s *workspaceService) Lenses(ctx context.Context, userId, documentId uuid.UUID) ([]dto.LensResponse, error) {
	if _, err := s.ownedDocument(ctx, userId, documentId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	lenses, err := uow.LensRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return mapLensResponses(lenses), nil
}

func (s *workspaceService) ActivateLens(ctx context.Context, userId, lensId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	l, err := uow.LensRepository().FindOne(ctx,
		specification.ByID{ID: lensId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if l == nil {
		return fiber.NewError(fiber.StatusNotFound, "lens not found")
	}
	documentId := l.DocumentId

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.LensRepository().SetActive(ctx, documentId, lensId); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "lens not found")
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// Keep the session sticky so later evolve calls pick the lens up.
	session, ok := s.workspaceRepo.Get(documentId.String())
	if !ok {
		session = &store.WorkspaceSession{DocumentID: documentId.String(), UserID: userId.String()}
	}
	session.ActiveLensID = lensId.String()
	s.workspaceRepo.Save(session)

	return nil
}

func (s *workspaceService) Versions(ctx context.Context, userId, documentId uuid.UUID) ([]dto.VersionResponse, error) {
	if _, err := s.ownedDocument(ctx, userId, documentId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	versions, err := uow.DocumentVersionRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "version_number", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, dto.VersionResponse{
			Id:            v.Id,
			VersionNumber: v.VersionNumber,
			Description:   v.Description,
			CreatedAt:     v.CreatedAt,
		})
	}
	return out, nil
}

// Diff renders the line diff between two versions. With from and to
// both zero it compares the latest two. Fewer than two versions yields
// an empty diff, not an error.
func (s *workspaceService) Diff(ctx context.Context, userId, documentId uuid.UUID, from, to int) (*dto.DiffResponse, error) {
	if _, err := s.ownedDocument(ctx, userId, documentId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	versions, err := uow.DocumentVersionRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "version_number", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	if len(versions) < 2 {
		return &dto.DiffResponse{Lines: []diffview.DiffLine{}}, nil
	}

	if from == 0 && to == 0 {
		from = versions[len(versions)-2].VersionNumber
		to = versions[len(versions)-1].VersionNumber
	}

	byNumber := make(map[int]*entity.DocumentVersion, len(versions))
	for _, v := range versions {
		byNumber[v.VersionNumber] = v
	}

	fromVersion, okFrom := byNumber[from]
	toVersion, okTo := byNumber[to]
	if !okFrom || !okTo {
		return nil, fiber.NewError(fiber.StatusNotFound, "version not found")
	}

	lines := diffview.Diff(fromVersion.Content, toVersion.Content)
	return &dto.DiffResponse{
		Lines:   lines,
		Added:   diffview.Count(lines, diffview.LineAdded),
		Removed: diffview.Count(lines, diffview.LineRemoved),
	}, nil
}

// resolveSessionDefaults layers request overrides on top of the sticky
// session, falling back to the document's own settings.
func (s *workspaceService) resolveSessionDefaults(doc *entity.Document, req *dto.EvolveDocumentRequest) (tone, targetLength string, activeLensId *uuid.UUID) {
	tone = doc.Tone
	targetLength = doc.TargetLength
	activeLensId = req.ActiveLensId

	if session, ok := s.workspaceRepo.Get(doc.Id.String()); ok {
		if session.Tone != "" {
			tone = session.Tone
		}
		if session.TargetLength != "" {
			targetLength = session.TargetLength
		}
		if activeLensId == nil && session.ActiveLensID != "" {
			if id, err := uuid.Parse(session.ActiveLensID); err == nil {
				activeLensId = &id
			}
		}
	}

	if req.Tone != "" {
		tone = req.Tone
	}
	if req.TargetLength != "" {
		targetLength = req.TargetLength
	}
	return tone, targetLength, activeLensId
}

func (s *workspaceService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, documentId uuid.UUID) ([]history.Entry, error) {
	stored, err := uow.EditHistoryRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	window := history.NewWindow(history.DefaultCapacity)
	for _, e := range stored {
		window.Push(history.Entry{
			Instruction:     e.Instruction,
			InstructionType: e.InstructionType,
			Summary:         e.Summary,
			Timestamp:       e.CreatedAt,
		})
	}
	return window.All(), nil
}

// relevantReferences embeds the instruction and pulls the nearest
// reference chunks. Any failure here degrades to an unaugmented prompt;
// evolution never fails because retrieval did.
func (s *workspaceService) relevantReferences(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, instruction string) []contextual.Reference {
	if s.embeddingProvider == nil {
		return nil
	}

	res, err := s.embeddingProvider.Generate(instruction, "RETRIEVAL_QUERY")
	if err != nil {
		s.logger.Warn("workspace_service", "instruction embedding failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	matches, err := uow.ReferenceEmbeddingRepository().SearchNearest(ctx, userId, pgvector.NewVector(res.Embedding.Values), relevantReferenceLimit)
	if err != nil {
		s.logger.Warn("workspace_service", "reference search failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if len(matches) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ReferenceId)
	}
	refs, err := uow.ReferenceRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		s.logger.Warn("workspace_service", "reference load failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	byId := make(map[uuid.UUID]*entity.ReferenceDocument, len(refs))
	for _, r := range refs {
		byId[r.Id] = r
	}

	out := make([]contextual.Reference, 0, len(matches))
	for _, m := range matches {
		ref, ok := byId[m.ReferenceId]
		if !ok {
			continue
		}
		out = append(out, contextual.Reference{
			Name:    ref.Name,
			Type:    string(ref.Type),
			Content: m.Chunk,
		})
	}
	return out
}

func (s *workspaceService) resolveActiveLens(ctx context.Context, uow unitofwork.UnitOfWork, documentId uuid.UUID, lensId *uuid.UUID) (string, error) {
	var (
		l   *entity.Lens
		err error
	)
	if lensId != nil {
		l, err = uow.LensRepository().FindOne(ctx,
			specification.ByID{ID: *lensId},
			specification.ByDocumentID{DocumentID: documentId},
		)
	} else {
		l, err = uow.LensRepository().FindOne(ctx,
			specification.ByDocumentID{DocumentID: documentId},
			specification.ActiveOnly{},
		)
	}
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", nil
	}
	return string(l.Type), nil
}

func (s *workspaceService) resolveProvocation(ctx context.Context, uow unitofwork.UnitOfWork, documentId uuid.UUID, provocationId *uuid.UUID) (*contextual.Provocation, error) {
	if provocationId == nil {
		return nil, nil
	}
	p, err := uow.ProvocationRepository().FindOne(ctx,
		specification.ByID{ID: *provocationId},
		specification.ByDocumentID{DocumentID: documentId},
	)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "provocation not found")
	}
	return &contextual.Provocation{
		Type:          string(p.Type),
		Title:         p.Title,
		Content:       p.Content,
		SourceExcerpt: p.SourceExcerpt,
	}, nil
}

// persistEvolution writes the new version, document text, history entry,
// and provocation status in one transaction and returns the version
// number assigned to the evolved text.
func (s *workspaceService) persistEvolution(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	doc *entity.Document,
	req *dto.EvolveDocumentRequest,
	instrType classify.InstructionType,
	evolved string,
	analysis analyze.Analysis,
) (int, error) {
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	count, err := uow.DocumentVersionRepository().Count(ctx, specification.ByDocumentID{DocumentID: doc.Id})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	versionNumber := int(count) + 1
	if count == 0 {
		// Document was never analyzed; seed the original before the
		// evolved text so the diff base always exists.
		original := &entity.DocumentVersion{
			Id:            uuid.New(),
			DocumentId:    doc.Id,
			VersionNumber: 1,
			Content:       doc.CurrentText,
			Description:   originalVersionNote,
			CreatedAt:     now,
		}
		if err := uow.DocumentVersionRepository().Create(ctx, original); err != nil {
			return 0, err
		}
		versionNumber = 2
	}

	version := &entity.DocumentVersion{
		Id:            uuid.New(),
		DocumentId:    doc.Id,
		VersionNumber: versionNumber,
		Content:       evolved,
		Description:   analysis.Summary,
		CreatedAt:     now,
	}
	if err := uow.DocumentVersionRepository().Create(ctx, version); err != nil {
		return 0, err
	}

	doc.CurrentText = evolved
	doc.UpdatedAt = &now
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return 0, err
	}

	entry := &entity.EditHistoryEntry{
		Id:              uuid.New(),
		DocumentId:      doc.Id,
		Instruction:     req.Instruction,
		InstructionType: string(instrType),
		Summary:         analysis.Summary,
		CreatedAt:       now,
	}
	if err := uow.EditHistoryRepository().Create(ctx, entry); err != nil {
		return 0, err
	}
	if err := uow.EditHistoryRepository().TrimToWindow(ctx, doc.Id, history.DefaultCapacity); err != nil {
		return 0, err
	}

	if req.ProvocationId != nil {
		if err := uow.ProvocationRepository().UpdateStatus(ctx, *req.ProvocationId, entity.ProvocationAddressed); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return versionNumber, nil
}

func (s *workspaceService) ownedDocument(ctx context.Context, userId, documentId uuid.UUID) (*entity.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "document not found")
	}
	return doc, nil
}

// publishEvent is best-effort; a missing or unhealthy broker never
// fails a user request.
func (s *workspaceService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("workspace_service", "event publish failed", map[string]interface{}{
			"event_type": event.EventType(), "error": err.Error(),
		})
	}
}

func (s *workspaceService) logTraffic(format string, args ...interface{}) {
	if s.llmTraffic == nil {
		return
	}
	s.llmTraffic.Printf(format, args...)
}

func mapLensResponses(lenses []*entity.Lens) []dto.LensResponse {
	out := make([]dto.LensResponse, 0, len(lenses))
	for _, l := range lenses {
		out = append(out, dto.LensResponse{
			Id:        l.Id,
			Type:      string(l.Type),
			Title:     l.Title,
			Summary:   l.Summary,
			KeyPoints: l.KeyPoints,
			IsActive:  l.IsActive,
		})
	}
	return out
}

func mapProvocationResponses(provs []*entity.Provocation) []dto.ProvocationResponse {
	out := make([]dto.ProvocationResponse, 0, len(provs))
	for _, p := range provs {
		out = append(out, dto.ProvocationResponse{
			Id:            p.Id,
			Type:          string(p.Type),
			Title:         p.Title,
			Content:       p.Content,
			SourceExcerpt: p.SourceExcerpt,
			Status:        string(p.Status),
		})
	}
	return out
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
