// Package memory is an in-process implementation of every repository and of
// pg.TXManager. A transaction holds the store lock until it finishes and
// restores the previous state when fn fails, which gives the same
// all-or-nothing behavior the database provides.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/pg"
)

type txKey struct{}

type reportKey struct {
	tenantID, year, month int
}

type state struct {
	tenants   map[int]domain.Tenant
	products  map[int]domain.Product
	sales     []domain.Sale
	purchases []domain.Purchase
	reports   map[reportKey]domain.FiscalReportSnapshot
	saleSeq   int
	itemSeq   int
	reportSeq int
}

func (st *state) clone() state {
	c := *st
	c.tenants = make(map[int]domain.Tenant, len(st.tenants))
	for k, v := range st.tenants {
		c.tenants[k] = v
	}
	c.products = make(map[int]domain.Product, len(st.products))
	for k, v := range st.products {
		c.products[k] = v
	}
	c.sales = append([]domain.Sale(nil), st.sales...)
	c.purchases = append([]domain.Purchase(nil), st.purchases...)
	c.reports = make(map[reportKey]domain.FiscalReportSnapshot, len(st.reports))
	for k, v := range st.reports {
		c.reports[k] = v
	}
	return c
}

type Store struct {
	mu sync.RWMutex
	st state
}

func NewStore() *Store {
	return &Store{
		st: state{
			tenants:  make(map[int]domain.Tenant),
			products: make(map[int]domain.Product),
			reports:  make(map[reportKey]domain.FiscalReportSnapshot),
		},
	}
}

// Begin runs fn with exclusive access to the store. Nested calls join the
// running transaction.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.st = saved
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

func (s *Store) read(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) write(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) PutTenant(t domain.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.tenants[t.ID] = t
}

func (s *Store) PutProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[p.ID] = p
}

func (s *Store) PutPurchase(p domain.Purchase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.purchases = append(s.st.purchases, p)
}

// Sales returns a copy of every stored sale in insertion order.
func (s *Store) Sales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sale(nil), s.st.sales...)
}

func (s *Store) Tenants() *TenantRepo     { return &TenantRepo{s: s} }
func (s *Store) Products() *ProductRepo   { return &ProductRepo{s: s} }
func (s *Store) SalesRepo() *SaleRepo     { return &SaleRepo{s: s} }
func (s *Store) Purchases() *PurchaseRepo { return &PurchaseRepo{s: s} }
func (s *Store) Reports() *ReportRepo     { return &ReportRepo{s: s} }

type TenantRepo struct{ s *Store }

func (r *TenantRepo) GetByID(ctx context.Context, tenantID int) (*domain.Tenant, error) {
	defer r.s.read(ctx)()
	t, ok := r.s.st.tenants[tenantID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TenantRepo) AtomicIncrement(ctx context.Context, tenantID int, walletDelta decimal.Decimal, creditDelta int64) error {
	defer r.s.write(ctx)()
	t, ok := r.s.st.tenants[tenantID]
	if !ok {
		return domain.ErrTenantNotFound
	}
	t.WalletBalance = t.WalletBalance.Add(walletDelta)
	t.CreditScore += creditDelta
	r.s.st.tenants[tenantID] = t
	return nil
}

func (r *TenantRepo) ListActiveIDs(ctx context.Context) ([]int, error) {
	defer r.s.read(ctx)()
	var ids []int
	for id, t := range r.s.st.tenants {
		if t.SubscriptionStatus == domain.SubscriptionActive || t.SubscriptionStatus == domain.SubscriptionTrialing {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

type ProductRepo struct{ s *Store }

func (r *ProductRepo) GetByID(ctx context.Context, productID int) (*domain.Product, error) {
	defer r.s.read(ctx)()
	p, ok := r.s.st.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) DecrementIfSufficient(ctx context.Context, productID, quantity int) (bool, error) {
	defer r.s.write(ctx)()
	p, ok := r.s.st.products[productID]
	if !ok {
		return false, domain.ErrProductNotFound
	}
	if p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	r.s.st.products[productID] = p
	return true, nil
}

func (r *ProductRepo) Increment(ctx context.Context, productID, quantity int) (*domain.Product, error) {
	defer r.s.write(ctx)()
	p, ok := r.s.st.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p.Stock += quantity
	r.s.st.products[productID] = p
	return &p, nil
}

type SaleRepo struct{ s *Store }

func (r *SaleRepo) Insert(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	defer r.s.write(ctx)()
	r.s.st.saleSeq++
	sale.ID = r.s.st.saleSeq
	items := make([]domain.SaleItem, len(sale.Items))
	for i, item := range sale.Items {
		r.s.st.itemSeq++
		item.ID = r.s.st.itemSeq
		item.SaleID = sale.ID
		items[i] = item
	}
	sale.Items = items

	stored := *sale
	stored.Items = append([]domain.SaleItem(nil), items...)
	r.s.st.sales = append(r.s.st.sales, stored)
	return sale, nil
}

func (r *SaleRepo) AggregateByTenantAndRange(ctx context.Context, tenantID int, start, end time.Time) (domain.SalesAggregate, error) {
	defer r.s.read(ctx)()
	agg := domain.SalesAggregate{Total: decimal.Zero}
	for _, sale := range r.s.st.sales {
		if sale.TenantID != tenantID || sale.Status != domain.SaleCompleted || !within(sale.Date, start, end) {
			continue
		}
		agg.Total = agg.Total.Add(sale.Total)
		agg.Count++
	}
	return agg, nil
}

type PurchaseRepo struct{ s *Store }

func (r *PurchaseRepo) AggregateByTenantAndRangeAndStatus(
	ctx context.Context,
	tenantID int,
	start, end time.Time,
	statuses []domain.PurchaseStatus,
) (domain.PurchasesAggregate, error) {
	defer r.s.read(ctx)()
	agg := domain.PurchasesAggregate{Total: decimal.Zero, Tax: decimal.Zero}
	for _, p := range r.s.st.purchases {
		if p.TenantID != tenantID || !within(p.Date, start, end) || !hasStatus(statuses, p.Status) {
			continue
		}
		agg.Total = agg.Total.Add(p.Total)
		agg.Tax = agg.Tax.Add(p.Tax)
	}
	return agg, nil
}

type ReportRepo struct{ s *Store }

func (r *ReportRepo) Save(ctx context.Context, snapshot *domain.FiscalReportSnapshot) error {
	defer r.s.write(ctx)()
	key := reportKey{snapshot.TenantID, snapshot.Year, snapshot.Month}
	if _, ok := r.s.st.reports[key]; ok {
		return nil
	}
	r.s.st.reportSeq++
	snapshot.ID = r.s.st.reportSeq
	r.s.st.reports[key] = *snapshot
	return nil
}

func (r *ReportRepo) Exists(ctx context.Context, tenantID, year, month int) (bool, error) {
	defer r.s.read(ctx)()
	_, ok := r.s.st.reports[reportKey{tenantID, year, month}]
	return ok, nil
}

func (r *ReportRepo) ListByTenant(ctx context.Context, tenantID int) ([]domain.FiscalReportSnapshot, error) {
	defer r.s.read(ctx)()
	var out []domain.FiscalReportSnapshot
	for key, snapshot := range r.s.st.reports {
		if key.tenantID == tenantID {
			out = append(out, snapshot)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func hasStatus(statuses []domain.PurchaseStatus, status domain.PurchaseStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
