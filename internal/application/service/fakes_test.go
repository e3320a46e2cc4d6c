package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// memStore is the shared in-memory backing for the fake repositories. One
// store per test keeps related fakes consistent with each other.
type memStore struct {
	mu           sync.Mutex
	customers    map[uuid.UUID]*entity.Customer
	vehicles     map[uuid.UUID]*entity.CustomerVehicle
	products     map[uuid.UUID]*entity.Product
	serviceItems map[uuid.UUID]*entity.ServiceItem
	fdItems      map[uuid.UUID]*entity.FdItem
	workOrders   map[uuid.UUID]*entity.WorkOrder
	washTxs      map[uuid.UUID]*entity.WashTransaction
	posTxs       map[uuid.UUID]*entity.POSTransaction
	shifts       map[uuid.UUID]*entity.Shift
	posSeq       int
	washSeq      int
}

func newMemStore() *memStore {
	return &memStore{
		customers:    make(map[uuid.UUID]*entity.Customer),
		vehicles:     make(map[uuid.UUID]*entity.CustomerVehicle),
		products:     make(map[uuid.UUID]*entity.Product),
		serviceItems: make(map[uuid.UUID]*entity.ServiceItem),
		fdItems:      make(map[uuid.UUID]*entity.FdItem),
		workOrders:   make(map[uuid.UUID]*entity.WorkOrder),
		washTxs:      make(map[uuid.UUID]*entity.WashTransaction),
		posTxs:       make(map[uuid.UUID]*entity.POSTransaction),
		shifts:       make(map[uuid.UUID]*entity.Shift),
	}
}

func (s *memStore) addCustomer(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.customers[c.ID] = c
	return c
}

func (s *memStore) addVehicle(v *entity.CustomerVehicle) *entity.CustomerVehicle {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	s.vehicles[v.ID] = v
	return v
}

func (s *memStore) addServiceItem(it *entity.ServiceItem) *entity.ServiceItem {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	s.serviceItems[it.ID] = it
	return it
}

func (s *memStore) addFdItem(it *entity.FdItem) *entity.FdItem {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	s.fdItems[it.ID] = it
	return it
}

func (s *memStore) addProduct(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) addWorkOrder(w *entity.WorkOrder) *entity.WorkOrder {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	s.workOrders[w.ID] = w
	return w
}

func (s *memStore) addWashTx(w *entity.WashTransaction) *entity.WashTransaction {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	s.washTxs[w.ID] = w
	return w
}

func (s *memStore) addShift(sh *entity.Shift) *entity.Shift {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	s.shifts[sh.ID] = sh
	return sh
}

// --- customer repository ---

type fakeCustomerRepo struct{ store *memStore }

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addCustomer(c)
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.customers[id], nil
}

func (r *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[c.ID]; !ok {
		return errors.New("customer not found")
	}
	r.store.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Customer
	for _, c := range r.store.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) UpdateCounters(ctx context.Context, id uuid.UUID, total, premium int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.customers[id]
	if !ok {
		return errors.New("customer not found")
	}
	c.TotalTransactions = total
	c.TotalPremiumTransactions = premium
	return nil
}

func (r *fakeCustomerRepo) ClearDeviceToken(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.customers[id]; ok {
		c.DeviceToken = nil
	}
	return nil
}

// --- customer vehicle repository ---

type fakeVehicleRepo struct{ store *memStore }

func (r *fakeVehicleRepo) Create(ctx context.Context, v *entity.CustomerVehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addVehicle(v)
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerVehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.vehicles[id], nil
}

func (r *fakeVehicleRepo) GetByLicensePlate(ctx context.Context, plate string) (*entity.CustomerVehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, v := range r.store.vehicles {
		if v.LicensePlate == plate {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *entity.CustomerVehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.CustomerVehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.CustomerVehicle
	for _, v := range r.store.vehicles {
		if v.CustomerID == customerID {
			out = append(out, *v)
		}
	}
	return out, nil
}

// --- service item repository ---

type fakeServiceItemRepo struct{ store *memStore }

func (r *fakeServiceItemRepo) Create(ctx context.Context, it *entity.ServiceItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addServiceItem(it)
	return nil
}

func (r *fakeServiceItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.serviceItems[id], nil
}

func (r *fakeServiceItemRepo) Update(ctx context.Context, it *entity.ServiceItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.serviceItems[it.ID] = it
	return nil
}

func (r *fakeServiceItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.serviceItems, id)
	return nil
}

func (r *fakeServiceItemRepo) List(ctx context.Context, activeOnly bool, appliesTo *enum.VehicleCategory) ([]entity.ServiceItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.ServiceItem
	for _, it := range r.store.serviceItems {
		if activeOnly && !it.IsActive {
			continue
		}
		if appliesTo != nil && it.AppliesTo != *appliesTo {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

// --- F&D item repository ---

type fakeFdItemRepo struct{ store *memStore }

func (r *fakeFdItemRepo) Create(ctx context.Context, it *entity.FdItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addFdItem(it)
	return nil
}

func (r *fakeFdItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FdItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.fdItems[id], nil
}

func (r *fakeFdItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FdItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.FdItem
	for _, id := range ids {
		if it, ok := r.store.fdItems[id]; ok {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeFdItemRepo) Update(ctx context.Context, it *entity.FdItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.fdItems[it.ID] = it
	return nil
}

func (r *fakeFdItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.fdItems, id)
	return nil
}

func (r *fakeFdItemRepo) List(ctx context.Context, activeOnly bool) ([]entity.FdItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.FdItem
	for _, it := range r.store.fdItems {
		if activeOnly && !it.IsActive {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

// --- product repository ---

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Product, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Product
	for _, p := range r.store.products {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

// --- work order repository ---

type fakeWorkOrderRepo struct{ store *memStore }

func (r *fakeWorkOrderRepo) Create(ctx context.Context, w *entity.WorkOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addWorkOrder(w)
	return nil
}

func (r *fakeWorkOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.workOrders[id], nil
}

func (r *fakeWorkOrderRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.WorkOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeWorkOrderRepo) Update(ctx context.Context, w *entity.WorkOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.workOrders[w.ID] = w
	return nil
}

func (r *fakeWorkOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WorkOrderStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.workOrders[id]
	if !ok {
		return errors.New("work order not found")
	}
	w.Status = status
	return nil
}

func (r *fakeWorkOrderRepo) List(ctx context.Context, params *repository.WorkOrderFilterParams) ([]entity.WorkOrder, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.WorkOrder
	for _, w := range r.store.workOrders {
		out = append(out, *w)
	}
	return out, int64(len(out)), nil
}

func (r *fakeWorkOrderRepo) NextQueueNo(ctx context.Context, date time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.workOrders) + 1, nil
}

// --- wash transaction repository ---

type fakeWashTxRepo struct{ store *memStore }

func (r *fakeWashTxRepo) Create(ctx context.Context, wt *entity.WashTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if wt.ID == uuid.Nil {
		wt.ID = uuid.New()
	}
	wt.CreatedAt = time.Now()
	r.store.washTxs[wt.ID] = wt
	return nil
}

func (r *fakeWashTxRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.washTxs[id], nil
}

func (r *fakeWashTxRepo) GetWithProducts(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeWashTxRepo) Update(ctx context.Context, wt *entity.WashTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.washTxs[wt.ID] = wt
	return nil
}

func (r *fakeWashTxRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WashTransactionStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	wt, ok := r.store.washTxs[id]
	if !ok {
		return errors.New("wash transaction not found")
	}
	wt.Status = status
	return nil
}

func (r *fakeWashTxRepo) List(ctx context.Context, params *repository.WashTransactionFilterParams) ([]entity.WashTransaction, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.WashTransaction
	for _, wt := range r.store.washTxs {
		out = append(out, *wt)
	}
	return out, int64(len(out)), nil
}

func (r *fakeWashTxRepo) ListByShift(ctx context.Context, shiftID uuid.UUID, params *pagination.PaginationParams) ([]entity.WashTransaction, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.WashTransaction
	for _, wt := range r.store.washTxs {
		if wt.ShiftID != nil && *wt.ShiftID == shiftID {
			out = append(out, *wt)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeWashTxRepo) SumCompletedByShift(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var total int64
	for _, wt := range r.store.washTxs {
		if wt.ShiftID != nil && *wt.ShiftID == shiftID && wt.Status == enum.WashTransactionStatusCompleted {
			total += wt.TotalPrice
		}
	}
	return total, nil
}

func (r *fakeWashTxRepo) SumByShiftAndMethod(ctx context.Context, shiftID uuid.UUID, method enum.WashPaymentMethod) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var total int64
	for _, wt := range r.store.washTxs {
		if wt.ShiftID != nil && *wt.ShiftID == shiftID && wt.PaymentMethod == method {
			total += wt.TotalPrice
		}
	}
	return total, nil
}

func (r *fakeWashTxRepo) CountByShift(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, wt := range r.store.washTxs {
		if wt.ShiftID != nil && *wt.ShiftID == shiftID {
			count++
		}
	}
	return count, nil
}

func (r *fakeWashTxRepo) CountCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, wt := range r.store.washTxs {
		if wt.CustomerID == customerID && wt.Status == enum.WashTransactionStatusCompleted {
			count++
		}
	}
	return count, nil
}

func (r *fakeWashTxRepo) NextSequence(ctx context.Context, date time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.washSeq++
	return r.store.washSeq, nil
}

// --- POS transaction repository ---

type fakePOSTxRepo struct{ store *memStore }

func (r *fakePOSTxRepo) Create(ctx context.Context, t *entity.POSTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	r.store.posTxs[t.ID] = t
	return nil
}

func (r *fakePOSTxRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.posTxs[id], nil
}

func (r *fakePOSTxRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePOSTxRepo) Update(ctx context.Context, t *entity.POSTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.posTxs[t.ID]; !ok {
		return errors.New("pos transaction not found")
	}
	r.store.posTxs[t.ID] = t
	return nil
}

func (r *fakePOSTxRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.posTxs, id)
	return nil
}

func (r *fakePOSTxRepo) List(ctx context.Context, params *repository.POSTransactionFilterParams) ([]entity.POSTransaction, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.POSTransaction
	for _, t := range r.store.posTxs {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakePOSTxRepo) HasCompletedForWashTransaction(ctx context.Context, washTransactionID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.posTxs {
		if t.WashTransactionID != nil && *t.WashTransactionID == washTransactionID && t.Status == enum.POSStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePOSTxRepo) HasCompletedForWorkOrder(ctx context.Context, workOrderID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.posTxs {
		if t.WorkOrderID != nil && *t.WorkOrderID == workOrderID && t.Status == enum.POSStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePOSTxRepo) ListCompletedByDate(ctx context.Context, date time.Time) ([]entity.POSTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	y, m, d := date.Date()
	var out []entity.POSTransaction
	for _, t := range r.store.posTxs {
		if t.Status != enum.POSStatusCompleted || t.CompletedAt == nil {
			continue
		}
		ty, tm, td := t.CompletedAt.Date()
		if ty == y && tm == m && td == d {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakePOSTxRepo) CountCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, t := range r.store.posTxs {
		if t.CustomerID == customerID && t.Status == enum.POSStatusCompleted {
			count++
		}
	}
	return count, nil
}

func (r *fakePOSTxRepo) CountPremiumCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, t := range r.store.posTxs {
		if t.CustomerID != customerID || t.Status != enum.POSStatusCompleted || t.WorkOrderID == nil {
			continue
		}
		w, ok := r.store.workOrders[*t.WorkOrderID]
		if !ok {
			continue
		}
		for _, svc := range w.Services {
			if svc.ServiceItem.IsPremium {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *fakePOSTxRepo) NextSequence(ctx context.Context, date time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.posSeq++
	return r.store.posSeq, nil
}

// --- shift repository ---

type fakeShiftRepo struct{ store *memStore }

func (r *fakeShiftRepo) Create(ctx context.Context, sh *entity.Shift) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	r.store.shifts[sh.ID] = sh
	return nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.shifts[id], nil
}

func (r *fakeShiftRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Shift, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, sh := range r.store.shifts {
		if sh.UserID == userID && sh.Status == enum.ShiftStatusActive {
			return sh, nil
		}
	}
	return nil, nil
}

func (r *fakeShiftRepo) Update(ctx context.Context, sh *entity.Shift) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.shifts[sh.ID]; !ok {
		return errors.New("shift not found")
	}
	r.store.shifts[sh.ID] = sh
	return nil
}

func (r *fakeShiftRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shift, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Shift
	for _, sh := range r.store.shifts {
		if userID != uuid.Nil && sh.UserID != userID {
			continue
		}
		out = append(out, *sh)
	}
	return out, int64(len(out)), nil
}

// --- transaction manager ---

// fakeTxManager runs the function directly. The services under test only
// rely on errors aborting the flow, which holds without a real database.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- printers ---

type failingPrinter struct{}

func (failingPrinter) Print(data []byte) error { return errors.New("printer offline") }
func (failingPrinter) Close() error            { return nil }
func (failingPrinter) IsConnected() bool       { return false }
