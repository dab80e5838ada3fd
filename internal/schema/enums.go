package schema

// Enumerated field domains for the programmatic trading report forms.
// Values are the exact strings the exchanges accept on the submitted sheet;
// comparison is exact (no case folding, no translation between the Chinese
// display names and their English references).

// Report type values (报告类型).
const (
	ReportTypeInitial = "首次"
	ReportTypeChange  = "变更"
	ReportTypeStop    = "停止使用"
)

// Yes/no values (是/否).
const (
	ValueYes = "是"
	ValueNo  = "否"
)

// ReportedElsewhere is the consolidated-reporting sentinel: the value is
// tracked by another exchange participant in a combined submission. Fields
// carrying it are exempt from the numeric and ratio consistency rules.
const ReportedElsewhere = "已在其他联交所参与者报告"

// ExemptValue marks an approved exemption on the test-report field and, when
// mirrored, on the HFT server-location field.
const ExemptValue = "已申请豁免"

// Tokens referenced by conditional predicates and business rules.
const (
	FundSourceLeveraged = "杠杆资金"
	OtherToken          = "其他"
)

var (
	// ReportTypes lists the accepted report type values.
	ReportTypes = []string{ReportTypeInitial, ReportTypeChange, ReportTypeStop}

	// YesNo is the plain yes/no domain.
	YesNo = []string{ValueYes, ValueNo}

	// YesNoExempt extends YesNo with the exemption value (test-report field).
	YesNoExempt = []string{ValueYes, ValueNo, ExemptValue}

	// FundSources lists accepted account fund sources (账户资金来源).
	FundSources = []string{"自有资金", "募集资金", FundSourceLeveraged, OtherToken}

	// LeverageSources lists accepted leverage fund sources (杠杆资金来源).
	LeverageSources = []string{"融资融券", "场外衍生品", OtherToken}

	// TradingProducts lists accepted trading products (交易品种).
	TradingProducts = []string{"股票", "基金"}

	// StrategyTypes lists accepted strategy classifications (策略类型).
	StrategyTypes = []string{
		"指数增强策略", "市场中性策略", "多空灵活策略", "量化多头策略",
		"管理期货策略CTA", "参与新股发行策略", "量化套利策略", "日内回转策略", OtherToken,
	}

	// ExecutionMethods lists accepted order execution methods (交易指令执行方式).
	ExecutionMethods = []string{"TWAP", "VWAP", "POV", OtherToken}

	// OrderRates lists the order-rate bands (账户最高申报速率).
	OrderRates = []string{"500笔及以上", "300笔至499笔", "100笔至299笔", "100笔以下"}

	// DailyOrderCounts lists the daily order count bands (账户单日最高申报笔数).
	DailyOrderCounts = []string{
		"25000笔及以上", "20000笔至24999笔", "15000笔至19999笔",
		"10000笔至14999笔", "10000笔以下",
	}
)

// High-frequency detection is set membership against the band labels above,
// not a numeric comparison: the underlying fields are enumerated bands. If
// the exchanges revise OrderRates or DailyOrderCounts, these subsets must be
// updated in lockstep.
var (
	HighFreqRates = []string{"500笔及以上", "300笔至499笔"}
	HighFreqDaily = []string{"25000笔及以上", "20000笔至24999笔"}
)

// InSet reports whether value is one of the enumerated values.
func InSet(value string, set []string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
