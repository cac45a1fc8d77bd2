package recipe

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/domain/tag"
	"github.com/brewista/catalog/internal/ports/inbound"
	"github.com/brewista/catalog/internal/ports/outbound"
	"go.uber.org/zap"
)

// lookupCacheTTL bounds staleness of resolved equipment and tag records
const lookupCacheTTL = 10 * time.Minute

// lookupResolver batch-resolves equipment and tag ids into catalog records,
// cache-aside. One lookup per dimension per page; never one call per id.
type lookupResolver struct {
	equipment outbound.EquipmentRepository
	tags      outbound.TagRepository
	cache     outbound.CacheRepository
	logger    *zap.Logger
}

func newLookupResolver(
	equipmentRepo outbound.EquipmentRepository,
	tagRepo outbound.TagRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) *lookupResolver {
	return &lookupResolver{
		equipment: equipmentRepo,
		tags:      tagRepo,
		cache:     cache,
		logger:    logger.Named("lookup-resolver"),
	}
}

// EquipmentByIDs returns the resolvable subset of ids keyed by id
func (r *lookupResolver) EquipmentByIDs(ctx context.Context, ids []int64) (map[int64]equipment.Equipment, error) {
	result := make(map[int64]equipment.Equipment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	missing := r.fromCache(ctx, "equipment", ids, func(data []byte) (int64, bool) {
		var e equipment.Equipment
		if err := json.Unmarshal(data, &e); err != nil {
			return 0, false
		}
		result[e.ID] = e
		return e.ID, true
	})

	if len(missing) == 0 {
		return result, nil
	}

	found, err := r.equipment.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	fresh := make(map[string][]byte, len(found))
	for _, e := range found {
		result[e.ID] = e
		if data, err := json.Marshal(e); err == nil {
			fresh[cacheKey("equipment", e.ID)] = data
		}
	}
	r.toCache(ctx, fresh)

	return result, nil
}

// TagsByIDs returns the resolvable subset of ids keyed by id
func (r *lookupResolver) TagsByIDs(ctx context.Context, ids []int64) (map[int64]tag.Tag, error) {
	result := make(map[int64]tag.Tag, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	missing := r.fromCache(ctx, "tag", ids, func(data []byte) (int64, bool) {
		var t tag.Tag
		if err := json.Unmarshal(data, &t); err != nil {
			return 0, false
		}
		result[t.ID] = t
		return t.ID, true
	})

	if len(missing) == 0 {
		return result, nil
	}

	found, err := r.tags.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	fresh := make(map[string][]byte, len(found))
	for _, t := range found {
		result[t.ID] = t
		if data, err := json.Marshal(t); err == nil {
			fresh[cacheKey("tag", t.ID)] = data
		}
	}
	r.toCache(ctx, fresh)

	return result, nil
}

// fromCache loads cached records and returns the ids still unresolved.
// Cache trouble degrades to a full repository lookup, never to an error.
func (r *lookupResolver) fromCache(ctx context.Context, kind string, ids []int64, absorb func([]byte) (int64, bool)) []int64 {
	if r.cache == nil {
		return ids
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cacheKey(kind, id)
	}

	hits, err := r.cache.MGet(ctx, keys)
	if err != nil {
		r.logger.Debug("lookup cache read failed", zap.String("kind", kind), zap.Error(err))
		return ids
	}

	resolved := make(map[int64]bool, len(hits))
	for _, data := range hits {
		if id, ok := absorb(data); ok {
			resolved[id] = true
		}
	}

	var missing []int64
	for _, id := range ids {
		if !resolved[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func (r *lookupResolver) toCache(ctx context.Context, items map[string][]byte) {
	if r.cache == nil || len(items) == 0 {
		return
	}
	if err := r.cache.MSet(ctx, items, lookupCacheTTL); err != nil {
		r.logger.Debug("lookup cache write failed", zap.Error(err))
	}
}

func cacheKey(kind string, id int64) string {
	return kind + ":" + strconv.FormatInt(id, 10)
}

// buildSummaries enriches a result page. The union of ids across the whole
// page is collected first so each relation costs one lookup, not N.
func (s *Service) buildSummaries(ctx context.Context, recipes []*recipe.Recipe) ([]inbound.RecipeSummary, error) {
	var equipmentIDs, tagIDs, baristaIDs []int64
	for _, r := range recipes {
		equipmentIDs = append(equipmentIDs, r.EquipmentIDs()...)
		tagIDs = append(tagIDs, r.TagIDs()...)
		if r.BaristaID() != nil {
			baristaIDs = append(baristaIDs, *r.BaristaID())
		}
	}

	equipmentByID, err := s.resolver.EquipmentByIDs(ctx, dedupe(equipmentIDs))
	if err != nil {
		return nil, err
	}
	tagsByID, err := s.resolver.TagsByIDs(ctx, dedupe(tagIDs))
	if err != nil {
		return nil, err
	}
	baristasByID, err := s.baristasByIDs(ctx, dedupe(baristaIDs))
	if err != nil {
		return nil, err
	}

	summaries := make([]inbound.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, summarize(r, equipmentByID, tagsByID, baristasByID))
	}
	return summaries, nil
}

// summarize maps one aggregate to its search-row DTO. Unresolvable ids fall
// back to the raw id so a stale reference still renders something.
func summarize(
	r *recipe.Recipe,
	equipmentByID map[int64]equipment.Equipment,
	tagsByID map[int64]tag.Tag,
	baristasByID map[int64]barista.Barista,
) inbound.RecipeSummary {
	names := make([]string, 0, len(r.EquipmentIDs()))
	for _, id := range r.EquipmentIDs() {
		if e, ok := equipmentByID[id]; ok {
			names = append(names, e.DisplayName())
		} else {
			names = append(names, strconv.FormatInt(id, 10))
		}
	}

	tags := make([]inbound.TagDTO, 0, len(r.TagIDs()))
	for _, id := range r.TagIDs() {
		if t, ok := tagsByID[id]; ok {
			tags = append(tags, inbound.TagDTO{
				ID:   strconv.FormatInt(t.ID, 10),
				Name: t.Name,
				Slug: t.Slug,
			})
		} else {
			raw := strconv.FormatInt(id, 10)
			tags = append(tags, inbound.TagDTO{ID: raw, Name: raw, Slug: raw})
		}
	}

	summary := inbound.RecipeSummary{
		ID:         r.ID().String(),
		Title:      r.Title(),
		Equipment:  names,
		RoastLevel: string(r.Conditions().RoastLevel()),
		Tags:       tags,
	}
	if r.Summary() != nil {
		summary.Summary = *r.Summary()
	}
	if r.BaristaID() != nil {
		if b, ok := baristasByID[*r.BaristaID()]; ok {
			summary.BaristaName = b.Name
		}
	}
	return summary
}

// buildDetail enriches a single aggregate into the full detail view.
// Unlike the summary view, unresolvable references are dropped here.
func (s *Service) buildDetail(ctx context.Context, r *recipe.Recipe) (*inbound.RecipeDetail, error) {
	equipmentByID, err := s.resolver.EquipmentByIDs(ctx, dedupe(r.EquipmentIDs()))
	if err != nil {
		return nil, err
	}
	tagsByID, err := s.resolver.TagsByIDs(ctx, dedupe(r.TagIDs()))
	if err != nil {
		return nil, err
	}

	equipmentDTOs := make([]inbound.EquipmentDTO, 0, len(r.EquipmentIDs()))
	for _, id := range r.EquipmentIDs() {
		e, ok := equipmentByID[id]
		if !ok {
			continue
		}
		dto := inbound.EquipmentDTO{
			ID:    strconv.FormatInt(e.ID, 10),
			Name:  e.Name,
			Brand: e.Brand,
		}
		if e.Type != nil {
			dto.EquipmentType = &inbound.EquipmentTypeDTO{
				ID:   strconv.FormatInt(e.Type.ID, 10),
				Name: e.Type.Name,
			}
		}
		equipmentDTOs = append(equipmentDTOs, dto)
	}

	tagDTOs := make([]inbound.TagDTO, 0, len(r.TagIDs()))
	for _, id := range r.TagIDs() {
		if t, ok := tagsByID[id]; ok {
			tagDTOs = append(tagDTOs, inbound.TagDTO{
				ID:   strconv.FormatInt(t.ID, 10),
				Name: t.Name,
				Slug: t.Slug,
			})
		}
	}

	var baristaDTO *inbound.BaristaDTO
	if r.BaristaID() != nil {
		b, err := s.baristas.FindByID(ctx, *r.BaristaID())
		if err != nil {
			return nil, err
		}
		if b != nil {
			links := make([]inbound.SocialLinkDTO, 0, len(b.SocialLinks))
			for _, l := range b.SocialLinks {
				links = append(links, inbound.SocialLinkDTO{Platform: l.Platform, URL: l.URL})
			}
			baristaDTO = &inbound.BaristaDTO{
				ID:          strconv.FormatInt(b.ID, 10),
				Name:        b.Name,
				Affiliation: b.Affiliation,
				SocialLinks: links,
			}
		}
	}

	steps := make([]inbound.StepDTO, 0, len(r.Steps()))
	for _, st := range r.Steps() {
		steps = append(steps, inbound.StepDTO{
			Order:       st.Order,
			Description: st.Description,
			DurationSec: st.DurationSec,
		})
	}

	cond := r.Conditions()
	detail := &inbound.RecipeDetail{
		ID:          r.ID().String(),
		Title:       r.Title(),
		Summary:     r.Summary(),
		Remarks:     r.Remarks(),
		RoastLevel:  string(cond.RoastLevel()),
		BeanWeight:  cond.BeanWeight(),
		WaterTemp:   cond.WaterTemp(),
		WaterAmount: cond.WaterAmount(),
		BrewingTime: cond.BrewTime(),
		Steps:       steps,
		Equipment:   equipmentDTOs,
		Tags:        tagDTOs,
		Barista:     baristaDTO,
		ViewCount:   r.ViewCount(),
		IsPublished: r.IsPublished(),
		CreatedAt:   r.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt().Format(time.RFC3339),
	}
	if cond.GrindSize() != nil {
		g := string(*cond.GrindSize())
		detail.GrindSize = &g
	}
	if r.PublishedAt() != nil {
		p := r.PublishedAt().Format(time.RFC3339)
		detail.PublishedAt = &p
	}
	return detail, nil
}

func (s *Service) baristasByIDs(ctx context.Context, ids []int64) (map[int64]barista.Barista, error) {
	result := make(map[int64]barista.Barista, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	found, err := s.baristas.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range found {
		result[b.ID] = b
	}
	return result, nil
}

func dedupe(ids []int64) []int64 {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
