package importer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RestaurantImportService reconciles an uploaded restaurants JSON document
// against the store. The whole document is applied inside one transaction;
// record-level failures become log entries and never abort the run, only a
// parse failure or a storage-level error does.
type RestaurantImportService struct {
	txManager dining.TransactionManager
	logger    *zap.Logger
}

// NewRestaurantImportService creates a new RestaurantImportService
func NewRestaurantImportService(txManager dining.TransactionManager, logger *zap.Logger) *RestaurantImportService {
	return &RestaurantImportService{
		txManager: txManager,
		logger:    logger,
	}
}

// Process imports a raw JSON document. A malformed document yields
// Result.Success == false with a single invalid_json entry and no
// transaction; a storage failure returns a non-nil error after rollback.
func (s *RestaurantImportService) Process(ctx context.Context, content []byte) (*Result, error) {
	var doc restaurantDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return &Result{
			Success: false,
			Logs:    []LogEntry{{Action: ActionInvalidJSON, Error: err.Error()}},
		}, nil
	}

	logs := make([]LogEntry, 0)
	err := s.txManager.Transaction(ctx, func(repos dining.RepositorySet) error {
		for _, entry := range doc.Restaurants {
			entryLogs, err := s.processRestaurant(ctx, repos, entry)
			logs = append(logs, entryLogs...)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("restaurant import aborted", zap.Error(err))
		return nil, err
	}

	return &Result{Success: true, Logs: logs}, nil
}

// processRestaurant resolves one restaurant entry and all menus beneath it.
// The returned error is a storage-level failure; record-level problems are
// already converted into log entries.
func (s *RestaurantImportService) processRestaurant(ctx context.Context, repos dining.RepositorySet, entry restaurantEntry) ([]LogEntry, error) {
	logs := make([]LogEntry, 0)

	restaurant, created, err := s.resolveRestaurant(ctx, repos, entry.Name)
	if err != nil {
		messages, ok := recordErrorMessages(err)
		if !ok {
			return logs, err
		}
		logs = append(logs, LogEntry{
			Restaurant: entry.Name,
			Action:     ActionRestaurantError,
			Error:      messages,
		})
		return logs, nil
	}
	if created {
		logs = append(logs, LogEntry{Restaurant: restaurant.Name, Action: ActionCreatedRestaurant})
	}

	for _, menuData := range entry.Menus {
		menuLogs, err := s.processMenu(ctx, repos, restaurant, menuData)
		logs = append(logs, menuLogs...)
		if err != nil {
			return logs, err
		}
	}

	return logs, nil
}

func (s *RestaurantImportService) processMenu(ctx context.Context, repos dining.RepositorySet, restaurant *dining.Restaurant, entry menuEntry) ([]LogEntry, error) {
	logs := make([]LogEntry, 0)

	menu, created, err := s.resolveMenu(ctx, repos, restaurant.ID, entry.Name)
	if err != nil {
		messages, ok := recordErrorMessages(err)
		if !ok {
			return logs, err
		}
		logs = append(logs, LogEntry{
			Restaurant: restaurant.Name,
			Menu:       entry.Name,
			Action:     ActionMenuError,
			Error:      messages,
		})
		return logs, nil
	}
	if created {
		logs = append(logs, LogEntry{Restaurant: restaurant.Name, Menu: menu.Name, Action: ActionCreatedMenu})
	}

	for _, itemData := range entry.items() {
		itemLogs, err := s.processItem(ctx, repos, restaurant, menu, itemData)
		logs = append(logs, itemLogs...)
		if err != nil {
			return logs, err
		}
	}

	return logs, nil
}

func (s *RestaurantImportService) processItem(ctx context.Context, repos dining.RepositorySet, restaurant *dining.Restaurant, menu *dining.Menu, entry itemEntry) ([]LogEntry, error) {
	item, itemAction, err := s.resolveMenuItem(ctx, repos, entry.Name)
	if err != nil {
		messages, ok := recordErrorMessages(err)
		if !ok {
			return nil, err
		}
		return []LogEntry{{
			Restaurant: restaurant.Name,
			Menu:       menu.Name,
			Item:       entry.Name,
			Action:     ActionItemError,
			Error:      messages,
		}}, nil
	}

	linkAction, price, err := s.linkMenuItem(ctx, repos, menu, item, entry.Price)
	if err != nil {
		messages, ok := recordErrorMessages(err)
		if !ok {
			return nil, err
		}
		return []LogEntry{{
			Restaurant: restaurant.Name,
			Menu:       menu.Name,
			Item:       item.Name,
			Action:     ActionLinkError,
			Error:      messages,
		}}, nil
	}

	return []LogEntry{
		{Restaurant: restaurant.Name, Menu: menu.Name, Item: item.Name, Action: itemAction, Price: NewLogPrice(price)},
		{Restaurant: restaurant.Name, Menu: menu.Name, Item: item.Name, Action: linkAction},
	}, nil
}

// resolveRestaurant returns the restaurant matching the normalized name,
// creating it if absent. created reports whether a row was inserted.
func (s *RestaurantImportService) resolveRestaurant(ctx context.Context, repos dining.RepositorySet, name string) (*dining.Restaurant, bool, error) {
	existing, err := repos.Restaurants.FindByNormalizedName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	restaurant, err := dining.NewRestaurant(name)
	if err != nil {
		return nil, false, err
	}
	if err := repos.Restaurants.Save(ctx, restaurant); err != nil {
		return nil, false, err
	}
	return restaurant, true, nil
}

// resolveMenu is the restaurant-scoped variant of resolveRestaurant
func (s *RestaurantImportService) resolveMenu(ctx context.Context, repos dining.RepositorySet, restaurantID uuid.UUID, name string) (*dining.Menu, bool, error) {
	existing, err := repos.Menus.FindByNormalizedName(ctx, restaurantID, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	menu, err := dining.NewMenu(restaurantID, name)
	if err != nil {
		return nil, false, err
	}
	if err := repos.Menus.Save(ctx, menu); err != nil {
		return nil, false, err
	}
	return menu, true, nil
}

// resolveMenuItem finds or creates the globally shared item. Unlike the
// restaurant and menu resolvers it also repairs a stored name whose
// whitespace layout differs from the normalized candidate, reporting the
// action as updated.
func (s *RestaurantImportService) resolveMenuItem(ctx context.Context, repos dining.RepositorySet, name string) (*dining.MenuItem, string, error) {
	normalized := dining.NormalizeName(name)

	existing, err := repos.MenuItems.FindByNormalizedName(ctx, normalized)
	if err == nil {
		if existing.Name == normalized {
			return existing, ActionUnchanged, nil
		}
		if err := existing.Rename(normalized); err != nil {
			return nil, "", err
		}
		if err := repos.MenuItems.Save(ctx, existing); err != nil {
			return nil, "", err
		}
		return existing, ActionUpdated, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, "", err
	}

	item, err := dining.NewMenuItem(name)
	if err != nil {
		return nil, "", err
	}
	if err := repos.MenuItems.Save(ctx, item); err != nil {
		return nil, "", err
	}
	return item, ActionCreated, nil
}

// linkMenuItem ensures exactly one placement exists for (menu, item). A
// supplied price overwrites the stored one; an absent price leaves an
// existing placement untouched and lets a new one default to zero. The
// returned price echoes the placement price when a price was supplied and is
// nil otherwise, so callers can omit it from the log entry.
func (s *RestaurantImportService) linkMenuItem(ctx context.Context, repos dining.RepositorySet, menu *dining.Menu, item *dining.MenuItem, price *decimal.Decimal) (string, *decimal.Decimal, error) {
	action := ActionFound
	changed := false

	placement, err := repos.Placements.FindByMenuAndItem(ctx, menu.ID, item.ID)
	if errors.Is(err, shared.ErrNotFound) {
		placement, err = dining.NewMenuItemPlacement(menu.ID, item.ID)
		if err != nil {
			return "", nil, err
		}
		action = ActionLinked
		changed = true
	} else if err != nil {
		return "", nil, err
	}

	if price != nil && !placement.Price.Equal(*price) {
		if err := placement.SetPrice(*price); err != nil {
			return "", nil, err
		}
		changed = true
	}

	if changed {
		if err := repos.Placements.Save(ctx, placement); err != nil {
			return "", nil, err
		}
	}

	if price == nil {
		return action, nil, nil
	}
	finalPrice := placement.Price
	return action, &finalPrice, nil
}

// recordErrorMessages converts a record-level failure into the message list
// attached to an error log entry. Storage-level failures report false and
// abort the transaction instead.
func recordErrorMessages(err error) ([]string, bool) {
	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages, true
	}
	if errors.Is(err, shared.ErrAlreadyExists) {
		// Lost a uniqueness race against a concurrent writer.
		return []string{"Name has already been taken"}, true
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return []string{domainErr.Message}, true
	}
	return nil, false
}
