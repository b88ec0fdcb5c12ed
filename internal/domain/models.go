package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionRecord is one row of the leaf_collections store. A row is
// either a raw collection (leaf physically received: bags, gross, net)
// or a deduction (a weight adjustment against a supplier's collection).
// IsDeduction discriminates, and exactly one of Raw or Deduction is set.
type CollectionRecord struct {
	ID          int64
	RegNo       int
	Route       string
	Dealer      string
	LeafType    LeafType
	IsDeduction bool
	Raw         *RawLeaf
	Deduction   *DeductionAmounts
	Shift       Shift
	UserName    string
	SourceMode  SourceMode
	HostName    string
	MonthLabel  string
	DayOfMonth  int
	LogTime     time.Time
}

// RawLeaf is the payload of a raw collection row. Net weight is stored
// at write time and is the authoritative payable quantity; it is never
// recomputed at read time.
type RawLeaf struct {
	Bags      int
	Gross     decimal.Decimal
	NetWeight decimal.Decimal
}

// DeductionAmounts is the payload of a deduction row. One deduction
// event is one row; on the stored row the quantity is always 1 and the
// gross and net weights are always 0.
type DeductionAmounts struct {
	BagWeight      decimal.Decimal
	Water          decimal.Decimal
	Coarse         decimal.Decimal
	Rejected       decimal.Decimal
	Boiled         decimal.Decimal
	Spd            decimal.Decimal
	RouteDeduct    decimal.Decimal
	ExcessLeaf     decimal.Decimal
	Transfer       decimal.Decimal
	RouteDeductPre decimal.Decimal
}

// Supplier is the distinct registration/dealer/route tuple derived from
// the collection table; there is no separate supplier master table.
type Supplier struct {
	RegNo        int    `db:"reg_no" json:"regNo"`
	SupplierName string `db:"supplier_name" json:"supplierName"`
	Route        string `db:"route" json:"route"`
}

// Transaction is the flat read view of a collection row. The external
// JSON keys "coarce" and "boiled" follow the existing consumers.
type Transaction struct {
	ID           int64           `db:"id" json:"ind"`
	RegNo        int             `db:"reg_no" json:"regNo"`
	SupplierName string          `db:"dealer" json:"supplierName"`
	Route        string          `db:"route" json:"route"`
	LeafType     LeafType        `db:"leaf_type" json:"leafType"`
	Bags         int             `db:"qty" json:"bags"`
	Gross        decimal.Decimal `db:"gross_weight" json:"gross"`
	BagWeight    decimal.Decimal `db:"bag_weight" json:"bagWeight"`
	Water        decimal.Decimal `db:"water" json:"water"`
	Coarse       decimal.Decimal `db:"coarse" json:"coarce"`
	Rejected     decimal.Decimal `db:"rejected" json:"rejected"`
	Boiled       decimal.Decimal `db:"boiled" json:"boiled"`
	NetWeight    decimal.Decimal `db:"net_weight" json:"netWeight"`
	Shift        Shift           `db:"shift" json:"shift"`
	UserName     string          `db:"user_name" json:"userName"`
	SourceMode   SourceMode      `db:"source_mode" json:"mode"`
	LogTime      time.Time       `db:"log_time" json:"logTime"`
	DisplayDate  string          `db:"display_date" json:"displayDate,omitempty"`
	DisplayTime  string          `db:"display_time" json:"displayTime,omitempty"`
	Source       string          `db:"source" json:"source,omitempty"`
}

// DeductionSummary combines one supplier's raw and deduction rows for a
// single day and leaf type. Bags, gross and net weight come from raw
// rows only; the deduction totals come from deduction rows only; the
// transaction count counts deduction rows only. All fields are zero
// when no rows match.
type DeductionSummary struct {
	TotalBags        int             `db:"total_bags" json:"totalBags"`
	TotalGross       decimal.Decimal `db:"total_gross" json:"totalGross"`
	TotalBagWeight   decimal.Decimal `db:"total_bag_weight" json:"totalBagWeight"`
	TotalCoarse      decimal.Decimal `db:"total_coarse" json:"totalCoarse"`
	TotalWater       decimal.Decimal `db:"total_water" json:"totalWater"`
	TotalBoiled      decimal.Decimal `db:"total_boiled" json:"totalBoiled"`
	TotalRejected    decimal.Decimal `db:"total_rejected" json:"totalRejected"`
	TotalNetWeight   decimal.Decimal `db:"total_net_weight" json:"totalNetWeight"`
	TransactionCount int             `db:"transaction_count" json:"transactionCount"`
}

// GroupedCollection is one row of the per-supplier grouped totals view.
// RecordCount counts every row in the group, raw and deduction alike.
type GroupedCollection struct {
	RegNo          int             `db:"reg_no" json:"regNo"`
	SupplierName   string          `db:"supplier_name" json:"supplierName"`
	Route          string          `db:"route" json:"route"`
	LeafType       LeafType        `db:"leaf_type" json:"leafType"`
	TotalBags      int             `db:"total_bags" json:"totalBags"`
	TotalGross     decimal.Decimal `db:"total_gross" json:"totalGross"`
	TotalBagWeight decimal.Decimal `db:"total_bag_weight" json:"totalBagWeight"`
	TotalCoarse    decimal.Decimal `db:"total_coarse" json:"totalCoarce"`
	TotalWater     decimal.Decimal `db:"total_water" json:"totalWater"`
	TotalBoiled    decimal.Decimal `db:"total_boiled" json:"totalBoiled"`
	TotalRejected  decimal.Decimal `db:"total_rejected" json:"totalRejected"`
	NetWeight      decimal.Decimal `db:"net_weight" json:"netWeight"`
	LastUpdated    time.Time       `db:"last_updated" json:"lastUpdated"`
	RecordCount    int             `db:"record_count" json:"recordCount"`
	AppCount       int             `db:"app_count" json:"appCount"`
	WebCount       int             `db:"web_count" json:"webCount"`
	DisplayDate    string          `db:"display_date" json:"displayDate"`
	DisplayTime    string          `db:"display_time" json:"displayTime"`
}

// CollectionFilter narrows the grouped collection views. All fields are
// optional; Route matches as a substring.
type CollectionFilter struct {
	Day   *time.Time
	From  *time.Time
	To    *time.Time
	RegNo *int
	Route string
}

// RouteDayTotals holds the sums needed to net a route's weight for one
// day. Gross covers raw rows only; the deduction fields are summed over
// every matching row (they are zero on raw rows by convention).
type RouteDayTotals struct {
	RecordCount    int             `db:"record_count"`
	Gross          decimal.Decimal `db:"gross"`
	Coarse         decimal.Decimal `db:"coarse"`
	Water          decimal.Decimal `db:"water"`
	BagWeight      decimal.Decimal `db:"bag_weight"`
	Spd            decimal.Decimal `db:"spd"`
	Boiled         decimal.Decimal `db:"boiled"`
	Rejected       decimal.Decimal `db:"rejected"`
	RouteDeduct    decimal.Decimal `db:"route_deduct"`
	ExcessLeaf     decimal.Decimal `db:"excess_leaf"`
	Transfer       decimal.Decimal `db:"transfer"`
	RouteDeductPre decimal.Decimal `db:"route_deduct_pre"`
}

// DeductionTotal sums every deduction field, including the route-level
// adjustments not attributable to a single supplier transaction.
func (t *RouteDayTotals) DeductionTotal() decimal.Decimal {
	return t.Coarse.
		Add(t.Water).
		Add(t.BagWeight).
		Add(t.Spd).
		Add(t.Boiled).
		Add(t.Rejected).
		Add(t.RouteDeduct).
		Add(t.ExcessLeaf).
		Add(t.Transfer).
		Add(t.RouteDeductPre)
}

// LeafCountRecord is one row of the leaf_counts register. The JSON key
// "BellowBest" is misspelled on purpose: an existing external consumer
// depends on that exact spelling.
type LeafCountRecord struct {
	ID         int64     `db:"id" json:"ind"`
	DayOfMonth int       `db:"day_of_month" json:"date"`
	MonthLabel string    `db:"month_label" json:"month"`
	Route      string    `db:"route" json:"route"`
	BestLeaf   int       `db:"best_leaf" json:"bestLeaf"`
	BelowBest  int       `db:"below_best" json:"BellowBest"`
	Poor       int       `db:"poor" json:"poor"`
	UserName   string    `db:"user_name" json:"user"`
	HostName   string    `db:"host_name" json:"pcName"`
	LogTime    time.Time `db:"log_time" json:"logTime"`
}

// LeafCountFilter narrows the leaf count history query. All fields are
// optional.
type LeafCountFilter struct {
	Month string
	Route string
	From  *time.Time
	To    *time.Time
}
