package sdk

// Overlay buffers every effect of a single call on top of a base host.
// Nothing reaches the base until Commit, so a rejected operation leaves no
// trace: the all-or-nothing rule the ordering layer promises callers.
// Transfers are buffered too and dispatched only on commit, strictly after
// the state writes.
type Overlay struct {
	base      Host
	writes    map[string]*string // nil value marks a delete
	logs      []string
	transfers []TransferRecord
}

func NewOverlay(base Host) *Overlay {
	return &Overlay{base: base, writes: map[string]*string{}}
}

func (o *Overlay) Set(key, value string) {
	v := value
	o.writes[key] = &v
}

func (o *Overlay) Get(key string) *string {
	if v, ok := o.writes[key]; ok {
		if v == nil {
			return nil
		}
		cp := *v
		return &cp
	}
	return o.base.Get(key)
}

func (o *Overlay) Delete(key string) { o.writes[key] = nil }

func (o *Overlay) GetEnv() Env { return o.base.GetEnv() }

func (o *Overlay) Log(msg string) { o.logs = append(o.logs, msg) }

func (o *Overlay) Transfer(to Address, amount int64, asset Asset) {
	o.transfers = append(o.transfers, TransferRecord{To: to, Amount: amount, Asset: asset})
}

// Commit flushes state writes first, then logs, then outbound transfers.
func (o *Overlay) Commit() {
	for k, v := range o.writes {
		if v == nil {
			o.base.Delete(k)
		} else {
			o.base.Set(k, *v)
		}
	}
	for _, l := range o.logs {
		o.base.Log(l)
	}
	for _, t := range o.transfers {
		o.base.Transfer(t.To, t.Amount, t.Asset)
	}
	o.writes = map[string]*string{}
	o.logs = nil
	o.transfers = nil
}
