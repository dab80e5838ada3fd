package schema

// shanghaiFields is the 42-column Shanghai (沪股通) report table.
var shanghaiFields = []FieldSpec{
	// Basic information (基本信息)
	{Position: 0, NameCN: "联交所参与者名称", NameEN: "ep_name", Kind: Text, MaxLength: 100, Require: Always},
	{Position: 1, NameCN: "经纪商代码", NameEN: "broker_code", Kind: Text, MaxLength: 5, Require: Always},
	{Position: 2, NameCN: "账户名称", NameEN: "account_name", Kind: Text, MaxLength: 200, Require: Always},
	{Position: 3, NameCN: "证件号码", NameEN: "id_number", Kind: Text, MaxLength: 80, Require: Conditional, Condition: CondFirstOrChange},
	{Position: 4, NameCN: "产品编码（选填）", NameEN: "product_code", Kind: Text, MaxLength: 50, Require: Optional},
	{Position: 5, NameCN: "券商客户编码", NameEN: "client_code", Kind: Text, MaxLength: 10, Require: Always},
	{Position: 6, NameCN: "产品管理机构名称", NameEN: "fund_manager", Kind: Text, MaxLength: 200, Require: Optional},
	{Position: 7, NameCN: "报告类型", NameEN: "report_type", Kind: Enum, MaxLength: 6, Require: Always, AllowedValues: ReportTypes},
	{Position: 8, NameCN: "报告日期", NameEN: "report_date", Kind: Date, MaxLength: 8, Require: Always},

	// Fund information (资金信息)
	{Position: 9, NameCN: "是否选取一家联交所参与者集中填报资金信息", NameEN: "consolidated_reporting", Kind: Enum, MaxLength: 1, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: YesNo},
	{Position: 10, NameCN: "账户资金规模（人民币，万元）", NameEN: "fund_size", Kind: Number, MaxLength: 30, Require: Conditional, Condition: CondFirstOrChange},
	{Position: 11, NameCN: "账户资金来源", NameEN: "fund_sources", Kind: MultiEnum, MaxLength: 30, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: FundSources},
	{Position: 12, NameCN: "其他资金来源描述", NameEN: "other_fund_desc", Kind: Text, MaxLength: 200, Require: Conditional, Condition: CondFundSourceOther},
	{Position: 13, NameCN: "资金来源占比", NameEN: "fund_source_ratio", Kind: Text, MaxLength: 50, Require: Conditional, Condition: CondFirstOrChange},
	{Position: 14, NameCN: "杠杆资金规模（人民币，万元）", NameEN: "leverage_size", Kind: Number, MaxLength: 30, Require: Conditional, Condition: CondFirstOrChange},
	{Position: 15, NameCN: "杠杆资金来源", NameEN: "leverage_sources", Kind: MultiEnum, MaxLength: 30, Require: Conditional, Condition: CondHasLeverageSource, AllowedValues: LeverageSources},
	{Position: 16, NameCN: "其他杠杆资金来源描述", NameEN: "other_leverage_desc", Kind: Text, MaxLength: 200, Require: Conditional, Condition: CondLeverageSourceOther},
	{Position: 17, NameCN: "杠杆率（%）", NameEN: "leverage_ratio", Kind: Number, MaxLength: 20, Require: Conditional, Condition: CondFirstOrChange},

	// Trading information (交易信息)
	{Position: 18, NameCN: "交易品种", NameEN: "trading_products", Kind: MultiEnum, MaxLength: 20, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: TradingProducts},
	{Position: 19, NameCN: "是否量化交易", NameEN: "is_quantitative", Kind: Enum, MaxLength: 1, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: YesNo},
	{Position: 20, NameCN: "主策略类型", NameEN: "main_strategy", Kind: Enum, MaxLength: 20, Require: Conditional, Condition: CondQuantitative, AllowedValues: StrategyTypes},
	{Position: 21, NameCN: "其他主策略类型", NameEN: "other_main_strategy", Kind: Text, MaxLength: 200, Require: Conditional, Condition: CondMainStrategyOther},
	{Position: 22, NameCN: "主策略概述", NameEN: "main_strategy_desc", Kind: Text, MaxLength: 500, Require: Conditional, Condition: CondMainStrategyFilled},
	{Position: 23, NameCN: "辅策略类型", NameEN: "sub_strategy", Kind: MultiEnum, MaxLength: 50, Require: Optional, AllowedValues: StrategyTypes, MultiValueMax: 2},
	{Position: 24, NameCN: "其他辅策略类型", NameEN: "other_sub_strategy", Kind: Text, MaxLength: 200, Require: Conditional, Condition: CondSubStrategyOther},
	{Position: 25, NameCN: "辅策略概述", NameEN: "sub_strategy_desc", Kind: Text, MaxLength: 500, Require: Conditional, Condition: CondSubStrategyFilled},
	{Position: 26, NameCN: "期货市场账户名称（选填）", NameEN: "futures_account_name", Kind: MultiText, MaxLength: 200, Require: Optional},
	{Position: 27, NameCN: "期货市场账户代码（选填）", NameEN: "futures_account_code", Kind: MultiText, MaxLength: 300, Require: Optional},
	{Position: 28, NameCN: "交易指令执行方式", NameEN: "execution_method", Kind: MultiEnum, MaxLength: 50, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: ExecutionMethods},
	{Position: 29, NameCN: "其他方式描述", NameEN: "other_execution_desc", Kind: Text, MaxLength: 500, Require: Conditional, Condition: CondExecutionOther},
	{Position: 30, NameCN: "指令执行方式概述", NameEN: "execution_desc", Kind: Text, MaxLength: 500, Require: Conditional, Condition: CondFirstOrChange},
	{Position: 31, NameCN: "账户最高申报速率", NameEN: "max_order_rate", Kind: Enum, MaxLength: 20, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: OrderRates},
	{Position: 32, NameCN: "账户单日最高申报笔数", NameEN: "max_daily_orders", Kind: Enum, MaxLength: 20, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: DailyOrderCounts},

	// Trading software (交易软件信息)
	{Position: 33, NameCN: "程序化交易软件名称及版本号", NameEN: "software_name", Kind: MultiText, MaxLength: 200, Require: Conditional, Condition: CondFirstOrChange},
	{Position: 34, NameCN: "程序化交易软件开发主体", NameEN: "software_developer", Kind: MultiText, MaxLength: 200, Require: Conditional, Condition: CondFirstOrChange},

	// Other (其他)
	{Position: 35, NameCN: "高频交易系统服务器所在地", NameEN: "hft_server_location", Kind: Text, MaxLength: 100, Require: Conditional, Condition: CondHighFreqNoExemption},
	{Position: 36, NameCN: "联交所参与者联络人（选填）", NameEN: "ep_contact", Kind: Text, MaxLength: 80, Require: Optional},
	{Position: 37, NameCN: "联交所参与者联络人联系方式（选填）", NameEN: "ep_contact_info", Kind: Text, MaxLength: 80, Require: Optional},
	{Position: 38, NameCN: "投资者相关业务负责人（选填）", NameEN: "investor_contact", Kind: Text, MaxLength: 80, Require: Optional},
	{Position: 39, NameCN: "投资者相关业务负责人联系方式（选填）", NameEN: "investor_contact_info", Kind: Text, MaxLength: 80, Require: Optional},
	{Position: 40, NameCN: "是否上传测试报告及应急方案", NameEN: "upload_test_report", Kind: Enum, MaxLength: 5, Require: Conditional, Condition: CondFirstOrChange, AllowedValues: YesNoExempt},
	{Position: 41, NameCN: "合格境外投资者编码", NameEN: "qfii_code", Kind: Text, MaxLength: 50, Require: Conditional, Condition: CondQFIIExemption},
}
