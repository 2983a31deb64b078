package service

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
)

// memData состояние хранилища в памяти для сценарных тестов сервисов
type memData struct {
	seq      int64
	users    map[int64]domain.User
	products map[int64]domain.Product
	orders   map[int64]domain.Order
	promos   map[int64]domain.PromoCode
	regs     map[string]domain.PendingRegistration
	topups   map[int64]domain.BalanceTopup
	events   map[string]domain.PaymentEvent
	reviews  map[int64]domain.Review
}

func (d *memData) clone() *memData {
	return &memData{
		seq:      d.seq,
		users:    maps.Clone(d.users),
		products: maps.Clone(d.products),
		orders:   maps.Clone(d.orders),
		promos:   maps.Clone(d.promos),
		regs:     maps.Clone(d.regs),
		topups:   maps.Clone(d.topups),
		events:   maps.Clone(d.events),
		reviews:  maps.Clone(d.reviews),
	}
}

func (d *memData) nextID() int64 {
	d.seq++
	return d.seq
}

// memStore реализует domain.Store в памяти. Транзакции выполняются по одной
// над копией данных и применяются целиком при успехе.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data *memData
	// fail задает ошибки для отдельных операций по имени метода
	fail map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		data: &memData{
			users:    map[int64]domain.User{},
			products: map[int64]domain.Product{},
			orders:   map[int64]domain.Order{},
			promos:   map[int64]domain.PromoCode{},
			regs:     map[string]domain.PendingRegistration{},
			topups:   map[int64]domain.BalanceTopup{},
			events:   map[string]domain.PaymentEvent{},
			reviews:  map[int64]domain.Review{},
		},
		fail: map[string]error{},
	}
}

func (m *memStore) view() *memView { return &memView{root: m} }

// snapshot возвращает текущее зафиксированное состояние
func (m *memStore) snapshot() *memData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

// memView представление хранилища: вне транзакции или внутри нее
type memView struct {
	root *memStore
	tx   *memData
}

var _ domain.Store = (*memView)(nil)

func (v *memView) Users() domain.UserRepository                 { return v }
func (v *memView) Products() domain.ProductRepository           { return v }
func (v *memView) Orders() domain.OrderRepository               { return v }
func (v *memView) Promos() domain.PromoRepository               { return v }
func (v *memView) Registrations() domain.RegistrationRepository { return v }
func (v *memView) Topups() domain.TopupRepository               { return v }
func (v *memView) PaymentEvents() domain.PaymentEventRepository { return v }
func (v *memView) Reviews() domain.ReviewRepository             { return v }

func (v *memView) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Store) error) error {
	if v.tx != nil {
		return fn(ctx, v)
	}

	v.root.txMu.Lock()
	defer v.root.txMu.Unlock()

	tx := &memView{root: v.root, tx: v.root.snapshot().clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	v.root.mu.Lock()
	v.root.data = tx.tx
	v.root.mu.Unlock()
	return nil
}

// do выполняет операцию над данными: внутри транзакции над копией, иначе под мьютексом
func (v *memView) do(op string, fn func(d *memData) error) error {
	if err := v.root.fail[op]; err != nil {
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}
	v.root.mu.Lock()
	defer v.root.mu.Unlock()
	return fn(v.root.data)
}

func copyOrder(o domain.Order) *domain.Order {
	o.Items = slices.Clone(o.Items)
	o.History = slices.Clone(o.History)
	return &o
}

func pageOf[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// Пользователи

func (v *memView) CreateUser(_ context.Context, u *domain.User) (*domain.User, error) {
	var out *domain.User
	err := v.do("CreateUser", func(d *memData) error {
		for _, other := range d.users {
			if strings.EqualFold(other.Email, u.Email) {
				return domain.ErrUserExists
			}
			if u.Phone != nil && other.Phone != nil && *u.Phone == *other.Phone {
				return domain.ErrPhoneTaken
			}
		}
		c := *u
		c.ID = d.nextID()
		c.Email = strings.ToLower(u.Email)
		c.CreatedAt = time.Now()
		d.users[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) findUser(op string, match func(u domain.User) bool) (*domain.User, error) {
	var out *domain.User
	err := v.do(op, func(d *memData) error {
		for _, u := range d.users {
			if match(u) {
				c := u
				out = &c
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	return out, err
}

func (v *memView) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	return v.findUser("GetUserByID", func(u domain.User) bool { return u.ID == id })
}

func (v *memView) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return v.findUser("GetUserByEmail", func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (v *memView) GetUserByPhone(_ context.Context, phone string) (*domain.User, error) {
	return v.findUser("GetUserByPhone", func(u domain.User) bool { return u.Phone != nil && *u.Phone == phone })
}

func (v *memView) sortedUsers(d *memData) []*domain.User {
	out := make([]*domain.User, 0, len(d.users))
	for _, u := range d.users {
		c := u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v *memView) ListUsers(_ context.Context, limit, offset int) ([]*domain.User, int, error) {
	var out []*domain.User
	var total int
	err := v.do("ListUsers", func(d *memData) error {
		all := v.sortedUsers(d)
		total = len(all)
		out = pageOf(all, limit, offset)
		return nil
	})
	return out, total, err
}

func (v *memView) ListUsersWithChat(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	err := v.do("ListUsersWithChat", func(d *memData) error {
		for _, u := range v.sortedUsers(d) {
			if u.TelegramChatID != nil {
				out = append(out, u)
			}
		}
		return nil
	})
	return out, err
}

func (v *memView) UpdateUser(_ context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	var out *domain.User
	err := v.do("UpdateUser", func(d *memData) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		if upd.FullName != nil {
			u.FullName = *upd.FullName
		}
		if upd.Phone != nil {
			p := *upd.Phone
			if u.Phone == nil || *u.Phone != p {
				u.PhoneVerified = false
			}
			u.Phone = &p
		}
		if upd.IsAdmin != nil {
			u.IsAdmin = *upd.IsAdmin
		}
		d.users[id] = u
		out = &u
		return nil
	})
	return out, err
}

func (v *memView) SetTelegramChat(_ context.Context, id, chatID int64) error {
	return v.do("SetTelegramChat", func(d *memData) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.TelegramChatID = &chatID
		d.users[id] = u
		return nil
	})
}

func (v *memView) DebitBalance(_ context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := v.do("DebitBalance", func(d *memData) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		if u.Balance.LessThan(amount) {
			return domain.ErrInsufficientBalance
		}
		u.Balance = u.Balance.Sub(amount)
		d.users[id] = u
		balance = u.Balance
		return nil
	})
	return balance, err
}

func (v *memView) CreditBalance(_ context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := v.do("CreditBalance", func(d *memData) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.Balance = u.Balance.Add(amount)
		d.users[id] = u
		balance = u.Balance
		return nil
	})
	return balance, err
}

// Товары

func (v *memView) CreateProduct(_ context.Context, p *domain.Product) (*domain.Product, error) {
	var out *domain.Product
	err := v.do("CreateProduct", func(d *memData) error {
		c := *p
		c.ID = d.nextID()
		c.CreatedAt = time.Now()
		c.UpdatedAt = c.CreatedAt
		d.products[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	var out *domain.Product
	err := v.do("GetProductByID", func(d *memData) error {
		p, ok := d.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (v *memView) ListProducts(_ context.Context, f domain.ProductFilter) ([]*domain.Product, int, error) {
	var out []*domain.Product
	var total int
	err := v.do("ListProducts", func(d *memData) error {
		var all []*domain.Product
		for _, p := range d.products {
			if f.OnlyActive && !p.IsActive {
				continue
			}
			if f.Category != "" && p.Category != f.Category {
				continue
			}
			if f.Search != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Description), strings.ToLower(f.Search)) {
				continue
			}
			c := p
			all = append(all, &c)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
		total = len(all)
		out = pageOf(all, f.Limit, (f.Page-1)*f.Limit)
		return nil
	})
	return out, total, err
}

func (v *memView) UpdateProduct(_ context.Context, p *domain.Product) (*domain.Product, error) {
	var out *domain.Product
	err := v.do("UpdateProduct", func(d *memData) error {
		old, ok := d.products[p.ID]
		if !ok {
			return domain.ErrProductNotFound
		}
		c := *p
		c.CreatedAt = old.CreatedAt
		c.UpdatedAt = time.Now()
		d.products[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) DeleteProduct(_ context.Context, id int64) error {
	return v.do("DeleteProduct", func(d *memData) error {
		if _, ok := d.products[id]; !ok {
			return domain.ErrProductNotFound
		}
		delete(d.products, id)
		return nil
	})
}

func (v *memView) DecrementStock(_ context.Context, id int64, qty int) error {
	return v.do("DecrementStock", func(d *memData) error {
		p, ok := d.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.Stock = max(p.Stock-qty, 0)
		d.products[id] = p
		return nil
	})
}

// Заказы

func (v *memView) CreateOrder(_ context.Context, o *domain.Order) (*domain.Order, error) {
	var out *domain.Order
	err := v.do("CreateOrder", func(d *memData) error {
		c := copyOrder(*o)
		c.ID = d.nextID()
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		c.LastStatusAt = c.CreatedAt
		c.History = []domain.StatusEntry{{Status: c.Status, CreatedAt: c.CreatedAt}}
		d.orders[c.ID] = *c
		out = copyOrder(*c)
		return nil
	})
	return out, err
}

func (v *memView) getOrder(op string, id int64) (*domain.Order, error) {
	var out *domain.Order
	err := v.do(op, func(d *memData) error {
		o, ok := d.orders[id]
		if !ok {
			return domain.ErrOrderNotFound
		}
		out = copyOrder(o)
		return nil
	})
	return out, err
}

func (v *memView) GetOrderByID(_ context.Context, id int64) (*domain.Order, error) {
	return v.getOrder("GetOrderByID", id)
}

func (v *memView) LockOrder(_ context.Context, id int64) (*domain.Order, error) {
	return v.getOrder("LockOrder", id)
}

func (v *memView) GetOrderByPaymentID(_ context.Context, paymentID string) (*domain.Order, error) {
	var out *domain.Order
	err := v.do("GetOrderByPaymentID", func(d *memData) error {
		for _, o := range d.orders {
			if o.PaymentID != nil && *o.PaymentID == paymentID {
				out = copyOrder(o)
				return nil
			}
		}
		return domain.ErrOrderNotFound
	})
	return out, err
}

func (v *memView) filterOrders(d *memData, match func(o domain.Order) bool) []*domain.Order {
	var out []*domain.Order
	for _, o := range d.orders {
		if match(o) {
			out = append(out, copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (v *memView) ListOrdersByUser(_ context.Context, userID int64) ([]*domain.Order, error) {
	var out []*domain.Order
	err := v.do("ListOrdersByUser", func(d *memData) error {
		out = v.filterOrders(d, func(o domain.Order) bool { return o.UserID == userID })
		return nil
	})
	return out, err
}

func (v *memView) ListOrders(_ context.Context, f domain.OrderFilter) ([]*domain.Order, int, error) {
	var out []*domain.Order
	var total int
	err := v.do("ListOrders", func(d *memData) error {
		q := strings.ToLower(f.Search)
		all := v.filterOrders(d, func(o domain.Order) bool {
			if f.Status != "" && o.Status != f.Status {
				return false
			}
			if q == "" {
				return true
			}
			return strconv.FormatInt(o.ID, 10) == q ||
				strings.Contains(strings.ToLower(o.FullName+" "+o.Phone+" "+o.Address), q)
		})
		total = len(all)
		out = pageOf(all, f.Limit, f.Offset())
		return nil
	})
	return out, total, err
}

func (v *memView) updateOrder(op string, id int64, fn func(o *domain.Order)) error {
	return v.do(op, func(d *memData) error {
		o, ok := d.orders[id]
		if !ok {
			return domain.ErrOrderNotFound
		}
		c := copyOrder(o)
		fn(c)
		d.orders[id] = *c
		return nil
	})
}

func (v *memView) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus, payment domain.PaymentStatus, at time.Time) error {
	return v.updateOrder("UpdateStatus", id, func(o *domain.Order) {
		o.Status = status
		if payment != "" {
			o.PaymentStatus = payment
		}
		o.LastStatusAt = at
	})
}

func (v *memView) AppendHistory(_ context.Context, id int64, entry domain.StatusEntry) error {
	return v.updateOrder("AppendHistory", id, func(o *domain.Order) {
		o.History = append(o.History, entry)
	})
}

func (v *memView) setFlagOnce(op string, id int64, flag func(o *domain.Order) *bool) (bool, error) {
	var changed bool
	err := v.updateOrder(op, id, func(o *domain.Order) {
		if f := flag(o); !*f {
			*f = true
			changed = true
		}
	})
	return changed, err
}

func (v *memView) MarkStockReduced(_ context.Context, id int64) (bool, error) {
	return v.setFlagOnce("MarkStockReduced", id, func(o *domain.Order) *bool { return &o.StockReduced })
}

func (v *memView) MarkPromoConsumed(_ context.Context, id int64) (bool, error) {
	return v.setFlagOnce("MarkPromoConsumed", id, func(o *domain.Order) *bool { return &o.PromoConsumed })
}

func (v *memView) SetPaymentID(_ context.Context, id int64, paymentID string) error {
	return v.updateOrder("SetPaymentID", id, func(o *domain.Order) { o.PaymentID = &paymentID })
}

func (v *memView) SetPaymentProof(_ context.Context, id int64, url string) error {
	return v.updateOrder("SetPaymentProof", id, func(o *domain.Order) { o.PaymentProofURL = &url })
}

func (v *memView) UpdateOrderDetails(_ context.Context, id int64, edit domain.OrderEdit) error {
	return v.updateOrder("UpdateOrderDetails", id, func(o *domain.Order) {
		if edit.FullName != nil {
			o.FullName = *edit.FullName
		}
		if edit.Phone != nil {
			o.Phone = *edit.Phone
		}
		if edit.Address != nil {
			o.Address = *edit.Address
		}
		if edit.TrackingNumber != nil {
			t := *edit.TrackingNumber
			o.TrackingNumber = &t
		}
	})
}

func (v *memView) DeleteOrder(_ context.Context, id int64) error {
	return v.do("DeleteOrder", func(d *memData) error {
		if _, ok := d.orders[id]; !ok {
			return domain.ErrOrderNotFound
		}
		delete(d.orders, id)
		return nil
	})
}

func (v *memView) ListStaleOrders(_ context.Context, status domain.OrderStatus, before time.Time) ([]int64, error) {
	var ids []int64
	err := v.do("ListStaleOrders", func(d *memData) error {
		for id, o := range d.orders {
			if o.Status == status && o.LastStatusAt.Before(before) {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		return nil
	})
	return ids, err
}

// Промокоды

func (v *memView) CreatePromo(_ context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	var out *domain.PromoCode
	err := v.do("CreatePromo", func(d *memData) error {
		for _, other := range d.promos {
			if strings.EqualFold(other.Code, p.Code) {
				return domain.ErrPromoExists
			}
		}
		c := *p
		c.ID = d.nextID()
		c.CreatedAt = time.Now()
		d.promos[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) GetPromoByID(_ context.Context, id int64) (*domain.PromoCode, error) {
	var out *domain.PromoCode
	err := v.do("GetPromoByID", func(d *memData) error {
		p, ok := d.promos[id]
		if !ok {
			return domain.ErrPromoNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (v *memView) GetPromoByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	var out *domain.PromoCode
	err := v.do("GetPromoByCode", func(d *memData) error {
		for _, p := range d.promos {
			if strings.EqualFold(p.Code, code) {
				c := p
				out = &c
				return nil
			}
		}
		return domain.ErrPromoNotFound
	})
	return out, err
}

func (v *memView) ListPromos(_ context.Context) ([]*domain.PromoCode, error) {
	var out []*domain.PromoCode
	err := v.do("ListPromos", func(d *memData) error {
		for _, p := range d.promos {
			c := p
			out = append(out, &c)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
		return nil
	})
	return out, err
}

func (v *memView) UpdatePromo(_ context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	var out *domain.PromoCode
	err := v.do("UpdatePromo", func(d *memData) error {
		old, ok := d.promos[p.ID]
		if !ok {
			return domain.ErrPromoNotFound
		}
		c := *p
		c.CurrentUses = old.CurrentUses
		c.CreatedAt = old.CreatedAt
		d.promos[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) DeactivatePromo(_ context.Context, id int64) error {
	return v.do("DeactivatePromo", func(d *memData) error {
		p, ok := d.promos[id]
		if !ok {
			return domain.ErrPromoNotFound
		}
		p.IsActive = false
		d.promos[id] = p
		return nil
	})
}

func (v *memView) IncrementUses(_ context.Context, code string) (bool, error) {
	var ok bool
	err := v.do("IncrementUses", func(d *memData) error {
		for id, p := range d.promos {
			if !strings.EqualFold(p.Code, code) {
				continue
			}
			if p.MaxUses != nil && p.CurrentUses >= *p.MaxUses {
				return nil
			}
			p.CurrentUses++
			d.promos[id] = p
			ok = true
			return nil
		}
		return nil
	})
	return ok, err
}

// Регистрации

func (v *memView) UpsertRegistration(_ context.Context, reg *domain.PendingRegistration) error {
	return v.do("UpsertRegistration", func(d *memData) error {
		c := *reg
		c.ChatID = nil
		c.Verified = false
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		d.regs[c.Phone] = c
		return nil
	})
}

func (v *memView) findRegistration(op string, match func(r domain.PendingRegistration) bool) (*domain.PendingRegistration, error) {
	var out *domain.PendingRegistration
	err := v.do(op, func(d *memData) error {
		for _, r := range d.regs {
			if match(r) {
				c := r
				out = &c
				return nil
			}
		}
		return domain.ErrRegistrationNotFound
	})
	return out, err
}

func (v *memView) GetRegistration(_ context.Context, phone string) (*domain.PendingRegistration, error) {
	return v.findRegistration("GetRegistration", func(r domain.PendingRegistration) bool { return r.Phone == phone })
}

func (v *memView) GetRegistrationByToken(_ context.Context, token string) (*domain.PendingRegistration, error) {
	return v.findRegistration("GetRegistrationByToken", func(r domain.PendingRegistration) bool {
		return r.VerificationToken == token
	})
}

func (v *memView) GetRegistrationByChat(_ context.Context, chatID int64) (*domain.PendingRegistration, error) {
	return v.findRegistration("GetRegistrationByChat", func(r domain.PendingRegistration) bool {
		return r.ChatID != nil && *r.ChatID == chatID
	})
}

func (v *memView) AttachChat(_ context.Context, token string, chatID int64) (*domain.PendingRegistration, error) {
	var out *domain.PendingRegistration
	err := v.do("AttachChat", func(d *memData) error {
		for phone, r := range d.regs {
			if r.VerificationToken == token {
				r.ChatID = &chatID
				d.regs[phone] = r
				out = &r
				return nil
			}
		}
		return domain.ErrRegistrationNotFound
	})
	return out, err
}

func (v *memView) MarkVerified(_ context.Context, phone, token string) (bool, error) {
	var ok bool
	err := v.do("MarkVerified", func(d *memData) error {
		r, found := d.regs[phone]
		if found && r.VerificationToken == token && !r.Verified {
			r.Verified = true
			d.regs[phone] = r
			ok = true
		}
		return nil
	})
	return ok, err
}

func (v *memView) DeleteRegistration(_ context.Context, phone string) error {
	return v.do("DeleteRegistration", func(d *memData) error {
		if _, ok := d.regs[phone]; !ok {
			return domain.ErrRegistrationNotFound
		}
		delete(d.regs, phone)
		return nil
	})
}

func (v *memView) DeleteRegistrationsBefore(_ context.Context, before time.Time) (int64, error) {
	var n int64
	err := v.do("DeleteRegistrationsBefore", func(d *memData) error {
		for phone, r := range d.regs {
			if r.CreatedAt.Before(before) {
				delete(d.regs, phone)
				n++
			}
		}
		return nil
	})
	return n, err
}

// Пополнения

func (v *memView) CreateTopup(_ context.Context, t *domain.BalanceTopup) (*domain.BalanceTopup, error) {
	var out *domain.BalanceTopup
	err := v.do("CreateTopup", func(d *memData) error {
		c := *t
		c.ID = d.nextID()
		c.Status = domain.TopupStatusPending
		c.CreatedAt = time.Now()
		c.UpdatedAt = c.CreatedAt
		d.topups[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) findTopup(op string, match func(t domain.BalanceTopup) bool) (*domain.BalanceTopup, error) {
	var out *domain.BalanceTopup
	err := v.do(op, func(d *memData) error {
		for _, t := range d.topups {
			if match(t) {
				c := t
				out = &c
				return nil
			}
		}
		return domain.ErrTopupNotFound
	})
	return out, err
}

func (v *memView) GetTopupByID(_ context.Context, id int64) (*domain.BalanceTopup, error) {
	return v.findTopup("GetTopupByID", func(t domain.BalanceTopup) bool { return t.ID == id })
}

func (v *memView) GetTopupByPaymentID(_ context.Context, paymentID string) (*domain.BalanceTopup, error) {
	return v.findTopup("GetTopupByPaymentID", func(t domain.BalanceTopup) bool {
		return t.PaymentID != nil && *t.PaymentID == paymentID
	})
}

func (v *memView) listTopups(op string, match func(t domain.BalanceTopup) bool) ([]*domain.BalanceTopup, error) {
	var out []*domain.BalanceTopup
	err := v.do(op, func(d *memData) error {
		for _, t := range d.topups {
			if match(t) {
				c := t
				out = append(out, &c)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
		return nil
	})
	return out, err
}

func (v *memView) ListTopupsByUser(_ context.Context, userID int64) ([]*domain.BalanceTopup, error) {
	return v.listTopups("ListTopupsByUser", func(t domain.BalanceTopup) bool { return t.UserID == userID })
}

func (v *memView) ListTopups(_ context.Context, status domain.TopupStatus) ([]*domain.BalanceTopup, error) {
	return v.listTopups("ListTopups", func(t domain.BalanceTopup) bool { return status == "" || t.Status == status })
}

func (v *memView) updateTopup(op string, id int64, fn func(t *domain.BalanceTopup) error) error {
	return v.do(op, func(d *memData) error {
		t, ok := d.topups[id]
		if !ok {
			return domain.ErrTopupNotFound
		}
		if err := fn(&t); err != nil {
			return err
		}
		t.UpdatedAt = time.Now()
		d.topups[id] = t
		return nil
	})
}

func (v *memView) SetTopupPayment(_ context.Context, id int64, paymentID, paymentURL string) error {
	return v.updateTopup("SetTopupPayment", id, func(t *domain.BalanceTopup) error {
		t.PaymentID = &paymentID
		t.PaymentURL = &paymentURL
		return nil
	})
}

func (v *memView) SetTopupProof(_ context.Context, id int64, url string) error {
	return v.updateTopup("SetTopupProof", id, func(t *domain.BalanceTopup) error {
		if t.Status != domain.TopupStatusPending {
			return domain.ErrTopupNotPending
		}
		t.ProofURL = &url
		return nil
	})
}

func (v *memView) FinishTopup(_ context.Context, id int64, status domain.TopupStatus, comment string) (bool, error) {
	var ok bool
	err := v.updateTopup("FinishTopup", id, func(t *domain.BalanceTopup) error {
		if t.Status != domain.TopupStatusPending {
			return nil
		}
		t.Status = status
		t.AdminComment = comment
		ok = true
		return nil
	})
	return ok, err
}

// События платежного шлюза

func (v *memView) RecordEvent(_ context.Context, ev domain.PaymentEvent) (bool, error) {
	var inserted bool
	err := v.do("RecordEvent", func(d *memData) error {
		if _, ok := d.events[ev.TransactionID]; ok {
			return nil
		}
		d.events[ev.TransactionID] = ev
		inserted = true
		return nil
	})
	return inserted, err
}

// Отзывы

func (v *memView) CreateReview(_ context.Context, r *domain.Review) (*domain.Review, error) {
	var out *domain.Review
	err := v.do("CreateReview", func(d *memData) error {
		if _, ok := d.products[r.ProductID]; !ok {
			return domain.ErrProductNotFound
		}
		for _, other := range d.reviews {
			if other.UserID == r.UserID && other.ProductID == r.ProductID {
				return domain.ErrReviewExists
			}
		}
		c := *r
		c.ID = d.nextID()
		c.CreatedAt = time.Now()
		c.Author = d.users[r.UserID].FullName
		d.reviews[c.ID] = c
		out = &c
		return nil
	})
	return out, err
}

func (v *memView) listReviews(d *memData, match func(r domain.Review) bool) []*domain.Review {
	var out []*domain.Review
	for _, r := range d.reviews {
		if match(r) {
			c := r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (v *memView) ListReviewsByProduct(_ context.Context, productID int64) ([]*domain.Review, error) {
	var out []*domain.Review
	err := v.do("ListReviewsByProduct", func(d *memData) error {
		out = v.listReviews(d, func(r domain.Review) bool { return r.ProductID == productID })
		return nil
	})
	return out, err
}

func (v *memView) ListReviews(_ context.Context, limit, offset int) ([]*domain.Review, int, error) {
	var out []*domain.Review
	var total int
	err := v.do("ListReviews", func(d *memData) error {
		all := v.listReviews(d, func(domain.Review) bool { return true })
		total = len(all)
		out = pageOf(all, limit, offset)
		return nil
	})
	return out, total, err
}

func (v *memView) DeleteReview(_ context.Context, id int64) error {
	return v.do("DeleteReview", func(d *memData) error {
		if _, ok := d.reviews[id]; !ok {
			return domain.ErrReviewNotFound
		}
		delete(d.reviews, id)
		return nil
	})
}

// Хелперы наполнения для тестов

func (m *memStore) addUser(u domain.User) *domain.User {
	out, err := m.view().CreateUser(context.Background(), &u)
	if err != nil {
		panic(err)
	}
	return out
}

func (m *memStore) addProduct(p domain.Product) *domain.Product {
	out, err := m.view().CreateProduct(context.Background(), &p)
	if err != nil {
		panic(err)
	}
	return out
}

func (m *memStore) addPromo(p domain.PromoCode) *domain.PromoCode {
	out, err := m.view().CreatePromo(context.Background(), &p)
	if err != nil {
		panic(err)
	}
	return out
}

func (m *memStore) user(id int64) domain.User       { return m.snapshot().users[id] }
func (m *memStore) product(id int64) domain.Product { return m.snapshot().products[id] }
func (m *memStore) order(id int64) domain.Order     { return *copyOrder(m.snapshot().orders[id]) }
func (m *memStore) promo(id int64) domain.PromoCode { return m.snapshot().promos[id] }
