package catalog

import "finai/internal/core"

// Declaration order matters: selection and tie-breaks take the first match.

var companies = []Company{
	{ID: "hdfc", Name: "HDFC Mutual Fund", Description: "One of India's largest asset management companies with a strong track record.", Website: "https://www.hdfcfund.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Liquid", "ETF"}, MinInvestment: 1000, AUM: 4200, Established: 1999, Rating: 4.5},
	{ID: "sbi", Name: "SBI Mutual Fund", Description: "Backed by State Bank of India, offering a wide range of investment solutions.", Website: "https://www.sbimf.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Index", "ETF"}, MinInvestment: 500, AUM: 6100, Established: 1987, Rating: 4.3},
	{ID: "icici", Name: "ICICI Prudential Mutual Fund", Description: "Joint venture between ICICI Bank and Prudential plc with diverse fund options.", Website: "https://www.icicipruamc.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "ETF", "Index"}, MinInvestment: 1000, AUM: 4900, Established: 1993, Rating: 4.4},
	{ID: "axis", Name: "Axis Mutual Fund", Description: "Investment solutions focused on long-term wealth creation with strong research capabilities.", Website: "https://www.axismf.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Liquid"}, MinInvestment: 500, AUM: 2500, Established: 2009, Rating: 4.2},
	{ID: "mirae", Name: "Mirae Asset", Description: "Global investment manager known for their equity-focused investment approach.", Website: "https://www.miraeassetmf.co.in", FundTypes: []string{"Equity", "Hybrid", "ETF", "Fund of Funds"}, MinInvestment: 1000, AUM: 1100, Established: 2008, Rating: 4.4},
	{ID: "nippon", Name: "Nippon India Mutual Fund", Description: "One of India's largest asset managers with a diverse range of funds.", Website: "https://mf.nipponindiaim.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "ETF", "Index"}, MinInvestment: 500, AUM: 3800, Established: 1995, Rating: 4.1},
	{ID: "kotak", Name: "Kotak Mahindra Mutual Fund", Description: "Part of Kotak Mahindra Group offering diversified investment solutions.", Website: "https://www.kotakmf.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "ETF"}, MinInvestment: 1000, AUM: 2900, Established: 1998, Rating: 4.3},
	{ID: "dsp", Name: "DSP Mutual Fund", Description: "Investment manager with strong research capabilities and disciplined investment processes.", Website: "https://www.dspim.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Liquid"}, MinInvestment: 500, AUM: 1400, Established: 1996, Rating: 4.2},
	{ID: "aditya", Name: "Aditya Birla Sun Life Mutual Fund", Description: "Joint venture between Aditya Birla Group and Sun Life Financial Inc.", Website: "https://www.mutualfund.adityabirlacapital.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Liquid", "ETF"}, MinInvestment: 1000, AUM: 2800, Established: 1994, Rating: 4.3},
	{ID: "uti", Name: "UTI Mutual Fund", Description: "One of India's oldest mutual fund companies with a trusted legacy.", Website: "https://www.utimf.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Liquid"}, MinInvestment: 500, AUM: 2200, Established: 1963, Rating: 4.0},
	{ID: "parag", Name: "Parag Parikh Financial Advisory Services (PPFAS)", Description: "Known for value investing approach with a focus on long-term wealth creation.", Website: "https://www.ppfas.com", FundTypes: []string{"Equity", "Hybrid", "Tax Saving"}, MinInvestment: 1000, AUM: 420, Established: 2013, Rating: 4.5},
	{ID: "tata", Name: "Tata Mutual Fund", Description: "Subsidiary of the Tata Group, offering a range of investment solutions.", Website: "https://www.tatamutualfund.com", FundTypes: []string{"Equity", "Debt", "Hybrid", "Index"}, MinInvestment: 500, AUM: 900, Established: 1995, Rating: 4.1},
}

var funds = []Fund{
	{
		ID: "hdfc-1", CompanyID: "hdfc", Name: "HDFC Mid-Cap Opportunities Fund", Type: "equity", Category: "Mid Cap", Risk: core.RiskHigh,
		Returns:       Returns{OneYear: pct(22.5), ThreeYear: pct(18.3), FiveYear: pct(16.2)},
		MinInvestment: 5000, ExpenseRatio: 1.8,
		Description: "Seeks to generate long-term capital appreciation from a portfolio of equity and equity related securities of mid-cap companies.",
		Tags:        []string{"midcap", "growth"},
	},
	{
		ID: "sbi-1", CompanyID: "sbi", Name: "SBI Bluechip Fund", Type: "equity", Category: "Large Cap", Risk: core.RiskMedium,
		Returns:       Returns{OneYear: pct(18.3), ThreeYear: pct(15.7), FiveYear: pct(13.8)},
		MinInvestment: 5000, ExpenseRatio: 1.65,
		Description: "Invests in large-cap companies with stable growth prospects and strong market positions.",
		Tags:        []string{"largecap", "bluechip"},
	},
	{
		ID: "icici-1", CompanyID: "icici", Name: "ICICI Prudential Balanced Advantage Fund", Type: "hybrid", Category: "Dynamic Asset Allocation", Risk: core.RiskMedium,
		Returns:       Returns{OneYear: pct(16.2), ThreeYear: pct(13.6), FiveYear: pct(12.4)},
		MinInvestment: 5000, ExpenseRatio: 1.7,
		Description: "A dynamic asset allocation fund that adjusts equity and debt exposure based on market conditions.",
		Tags:        []string{"dynamic", "balanced"},
	},
	{
		ID: "parag-1", CompanyID: "parag", Name: "PPFAS Flexi Cap Fund", Type: "equity", Category: "Flexi Cap", Risk: core.RiskMedium,
		Returns:       Returns{OneYear: pct(24.8), ThreeYear: pct(19.6), FiveYear: pct(17.3)},
		MinInvestment: 1000, ExpenseRatio: 1.4,
		Description: "Value-oriented fund with investments across market caps and including international equities.",
		Tags:        []string{"flexicap", "value"},
	},
	{
		ID: "axis-1", CompanyID: "axis", Name: "Axis Small Cap Fund", Type: "equity", Category: "Small Cap", Risk: core.RiskHigh,
		Returns:       Returns{OneYear: pct(26.5), ThreeYear: pct(22.8), FiveYear: pct(18.9)},
		MinInvestment: 5000, ExpenseRatio: 1.95,
		Description: "Focused on small-cap companies with high growth potential and long-term value creation.",
		Tags:        []string{"smallcap", "growth"},
	},
	{
		ID: "mirae-1", CompanyID: "mirae", Name: "Mirae Asset Large Cap Fund", Type: "equity", Category: "Large Cap", Risk: core.RiskMedium,
		Returns:       Returns{OneYear: pct(19.2), ThreeYear: pct(16.5), FiveYear: pct(14.3)},
		MinInvestment: 5000, ExpenseRatio: 1.6,
		Description: "Invests in large, established companies with strong fundamentals and growth prospects.",
		Tags:        []string{"largecap", "growth"},
	},
	{
		ID: "kotak-1", CompanyID: "kotak", Name: "Kotak Corporate Bond Fund", Type: "debt", Category: "Corporate Bond", Risk: core.RiskLow,
		Returns:       Returns{OneYear: pct(7.8), ThreeYear: pct(7.2), FiveYear: pct(7.5)},
		MinInvestment: 5000, ExpenseRatio: 0.45,
		Description: "Invests in high-quality corporate bonds, aiming for regular income with capital preservation.",
		Tags:        []string{"debt", "income"},
	},
	{
		ID: "hdfc-2", CompanyID: "hdfc", Name: "HDFC Liquid Fund", Type: "liquid", Category: "Liquid", Risk: core.RiskLow,
		Returns:       Returns{OneYear: pct(6.2), ThreeYear: pct(5.8), FiveYear: pct(6.1)},
		MinInvestment: 5000, ExpenseRatio: 0.18,
		Description: "Invests in very short-term debt instruments with high liquidity and capital preservation.",
		Tags:        []string{"liquid", "safe"},
	},
	{
		ID: "sbi-2", CompanyID: "sbi", Name: "SBI Small Cap Fund", Type: "equity", Category: "Small Cap", Risk: core.RiskHigh,
		Returns:       Returns{OneYear: pct(27.3), ThreeYear: pct(23.1), FiveYear: pct(19.2)},
		MinInvestment: 5000, ExpenseRatio: 1.9,
		Description: "Focuses on identifying small-cap companies with growth potential at reasonable valuations.",
		Tags:        []string{"smallcap", "growth"},
	},
	{
		ID: "nippon-1", CompanyID: "nippon", Name: "Nippon India Tax Saver Fund", Type: FundTypeTaxSaving, Category: "ELSS", Risk: core.RiskHigh,
		Returns:       Returns{OneYear: pct(21.4), ThreeYear: pct(17.8), FiveYear: pct(15.2)},
		MinInvestment: 500, ExpenseRatio: 1.85,
		Description: "ELSS fund offering tax benefits under Section 80C with a 3-year lock-in period.",
		Tags:        []string{"tax-saving", "elss"},
	},
	{
		ID: "aditya-1", CompanyID: "aditya", Name: "Aditya Birla Sun Life Corporate Bond Fund", Type: "debt", Category: "Corporate Bond", Risk: core.RiskLow,
		Returns:       Returns{OneYear: pct(7.5), ThreeYear: pct(6.9), FiveYear: pct(7.3)},
		MinInvestment: 1000, ExpenseRatio: 0.55,
		Description: "Invests predominantly in AA+ and above rated corporate bonds with a focus on generating steady returns.",
		Tags:        []string{"debt", "income"},
	},
	{
		ID: "dsp-1", CompanyID: "dsp", Name: "DSP Equity & Bond Fund", Type: "hybrid", Category: "Aggressive Hybrid", Risk: core.RiskMedium,
		Returns:       Returns{OneYear: pct(17.8), ThreeYear: pct(14.2), FiveYear: pct(12.9)},
		MinInvestment: 1000, ExpenseRatio: 1.75,
		Description: "Balanced fund with 65-80% allocation to equity and the rest to debt instruments.",
		Tags:        []string{"hybrid", "balanced"},
	},
}

var strategies = []Strategy{
	{
		Name:            "Conservative Income",
		Description:     "Focus on capital preservation with steady income generation.",
		Risk:            core.RiskLow,
		SuitableFor:     []string{"Retirees", "Short-term goals (1-3 years)", "Very risk-averse investors"},
		TimeHorizon:     "1-3 years",
		ExpectedReturns: "6-8% per annum",
		Allocation: []AllocationLine{
			{Type: "Liquid Funds", Percentage: 30, Description: "For emergency funds and short-term needs"},
			{Type: "Corporate Bond Funds", Percentage: 40, Description: "For regular income with minimal volatility"},
			{Type: "Government Securities", Percentage: 20, Description: "For safety and inflation protection"},
			{Type: "Large Cap Equity", Percentage: 10, Description: "For minimal growth exposure"},
		},
		Icon: "shield",
	},
	{
		Name:            "Moderate Balanced",
		Description:     "Balancing growth and stability for medium-term wealth creation.",
		Risk:            core.RiskMedium,
		SuitableFor:     []string{"Middle-aged investors", "Medium-term goals (3-7 years)", "Balanced risk tolerance"},
		TimeHorizon:     "3-7 years",
		ExpectedReturns: "10-12% per annum",
		Allocation: []AllocationLine{
			{Type: "Large Cap Equity", Percentage: 35, Description: "Core equity allocation for stability"},
			{Type: "Mid Cap Equity", Percentage: 20, Description: "For growth with moderate risk"},
			{Type: "Corporate Bonds", Percentage: 25, Description: "For income generation"},
			{Type: "Gold ETFs", Percentage: 10, Description: "For inflation hedging and diversification"},
			{Type: "Liquid Funds", Percentage: 10, Description: "For emergency needs and flexibility"},
		},
		Icon: "bar-chart",
	},
	{
		Name:            "Aggressive Growth",
		Description:     "Maximizing growth potential for long-term wealth accumulation.",
		Risk:            core.RiskHigh,
		SuitableFor:     []string{"Young investors", "Long-term goals (7+ years)", "High risk tolerance"},
		TimeHorizon:     "7+ years",
		ExpectedReturns: "14-18% per annum",
		Allocation: []AllocationLine{
			{Type: "Mid Cap Equity", Percentage: 30, Description: "For substantial growth potential"},
			{Type: "Small Cap Equity", Percentage: 25, Description: "For maximum growth potential"},
			{Type: "Large Cap Equity", Percentage: 20, Description: "For relative stability"},
			{Type: "International Equity", Percentage: 15, Description: "For geographical diversification"},
			{Type: "Corporate Bonds", Percentage: 10, Description: "For minimal income stabilization"},
		},
		Icon: "trending-up",
	},
	{
		Name:            "Tax-Efficient Growth",
		Description:     "Optimizing for tax efficiency while focusing on long-term growth.",
		Risk:            core.RiskMedium,
		SuitableFor:     []string{"Tax-conscious investors", "Long-term goals with tax benefits", "Medium to high income earners"},
		TimeHorizon:     "3+ years",
		ExpectedReturns: "12-15% per annum",
		Allocation: []AllocationLine{
			{Type: "ELSS Funds", Percentage: 40, Description: "For tax benefits under Section 80C with growth"},
			{Type: "Arbitrage Funds", Percentage: 20, Description: "For tax-efficient returns similar to debt"},
			{Type: "Multi-Cap Equity", Percentage: 25, Description: "For diversified equity exposure"},
			{Type: "Debt Funds (3+ year holding)", Percentage: 15, Description: "For long-term capital gains benefits"},
		},
		Icon: "line-chart",
	},
}

var suggestions = map[core.RiskTier][]Suggestion{
	core.RiskLow: {
		{Name: "Government Bonds (Govt of India)", ReturnRange: "7-8%", Risk: core.RiskLow, Description: "Sovereign bonds backed by the Government of India with virtually no default risk.", MinAmount: 10000},
		{Name: "Bank Fixed Deposits (HDFC)", ReturnRange: "6-7%", Risk: core.RiskLow, Description: "Time deposits in leading Indian banks with guaranteed returns.", MinAmount: 5000},
		{Name: "Public Provident Fund (PPF)", ReturnRange: "7-7.5%", Risk: core.RiskLow, Description: "Government-backed long-term savings scheme with tax benefits under 80C.", MinAmount: 500},
	},
	core.RiskMedium: {
		{Name: "Balanced Advantage Funds", ReturnRange: "10-12%", Risk: core.RiskMedium, Description: "Dynamic allocation between equity and debt based on market valuations.", MinAmount: 5000},
		{Name: "Corporate Bonds (AAA-rated)", ReturnRange: "8-9%", Risk: core.RiskMedium, Description: "Debt instruments issued by top-rated Indian corporations.", MinAmount: 10000},
		{Name: "REIT (Embassy Office Parks)", ReturnRange: "8-10%", Risk: core.RiskMedium, Description: "Investment in India's commercial real estate market with regular dividend income.", MinAmount: 15000},
	},
	core.RiskHigh: {
		{Name: "Small Cap Mutual Funds", ReturnRange: "15-18%", Risk: core.RiskHigh, Description: "Investments in small-sized Indian companies with high growth potential.", MinAmount: 10000},
		{Name: "Sectoral Funds (Technology)", ReturnRange: "14-20%", Risk: core.RiskHigh, Description: "Focused investments in India's booming technology sector.", MinAmount: 10000},
		{Name: "Mid-Cap Equity Funds", ReturnRange: "13-16%", Risk: core.RiskHigh, Description: "Investments in medium-sized growing Indian companies.", MinAmount: 5000},
	},
}
