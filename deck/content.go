package deck

// The twelve slides of the Tissue Manufacturing QA Dashboard deck. All
// content is literal; each builder is a pure function returning a Slide.

// BuildDashboardDeck assembles the full deck in its fixed slide order.
func BuildDashboardDeck() *Deck {
	d := New("Tissue Manufacturing QA Dashboard", "Tissue QA Dashboard")
	for _, build := range slideBuilders() {
		d.Append(build())
	}
	return d
}

// slideBuilders returns the slide constructors in presentation order.
func slideBuilders() []func() Slide {
	return []func() Slide{
		titleSlide,
		overviewSlide,
		keyFeaturesSlide,
		metricsMonitoredSlide,
		machineParametersSlide,
		trendAnalysisSlide,
		advancedAnalyticsSlide,
		keyInsightsSlide,
		processOptimizationSlide,
		technicalImplementationSlide,
		futureEnhancementsSlide,
		conclusionSlide,
	}
}

func titleSlide() Slide {
	return Slide{
		Layout: LayoutTitle,
		Title:  "Tissue Manufacturing QA Dashboard",
		Subtitle: []string{
			"Comprehensive Quality Analytics & Monitoring System",
			"Real-time Process Control & Performance Insights",
		},
	}
}

func overviewSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Dashboard Overview",
		Body: RenderBody(
			Paragraph{Text: "Complete Quality Management Solution"},
			[]Line{
				Bullet("Real-time quality monitoring across all production parameters"),
				Bullet("Advanced analytics with daily averaging for stable insights"),
				Bullet("Multi-dimensional filtering and data exploration"),
				Bullet("Automated PDF report generation"),
				Bullet("Process capability analysis (Cpk)"),
				Bullet("Trend analysis with statistical control limits"),
				Bullet("Shift performance comparison"),
				Bullet("Correlation analysis between parameters"),
			},
			18,
		),
	}
}

func keyFeaturesSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Key Features",
		Body: RenderBody(
			Paragraph{Text: "1. Data Upload & Processing", Bold: true},
			[]Line{
				Bullet("• Excel file upload with automatic parsing"),
				Bullet("• Intelligent column mapping"),
				Bullet("• Data validation and error handling"),
				Header("2. Daily Quality Reports"),
				Bullet("• Comprehensive daily metrics view"),
				Bullet("• Automatic data aggregation"),
				Bullet("• PDF report generation"),
				Header("3. Advanced Filtering"),
				Bullet("• Date range selection"),
				Bullet("• Shift, Quality, and GSM grade filters"),
				Bullet("• Multi-criteria filtering"),
			},
			18,
		),
	}
}

func metricsMonitoredSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Quality Metrics Monitored",
		Body: RenderBody(
			Paragraph{Text: "Core Quality Parameters", Bold: true},
			[]Line{
				Bullet("• GSM (Grammage) - g/m²"),
				Bullet("• Thickness - μm"),
				Bullet("• Bulk - cc/g"),
				Bullet("• Tensile Strength MD/CD - N/m"),
				Bullet("• MD/CD Ratio"),
				Bullet("• Brightness ISO - %"),
				Bullet("• Opacity - %"),
				Bullet("• Moisture Content - %"),
				Bullet("• Stretch/Elongation - %"),
				Bullet("• Wet Tensile - gf/50mm"),
				Bullet("• Wet/Dry Tensile Ratio - %"),
			},
			16,
		),
	}
}

func machineParametersSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Machine Parameters & Fiber Composition",
		Body: RenderBody(
			Paragraph{Text: "Machine Parameters", Bold: true},
			[]Line{
				Bullet("• Machine Speed (Mpm)"),
				Bullet("• Pope Reel Speed (Mpm)"),
				Bullet("• MC Draw"),
				Bullet("• Press Load"),
				Bullet("• Coating Parameters"),
				Bullet("• Machine Creep %"),
				Header("Fiber Composition & Consumption"),
				Bullet("• Short Fiber %"),
				Bullet("• Long Fiber %"),
				Bullet("• Broke %"),
				Bullet("• HW/SW Consistency"),
				Bullet("• HW SR / SW OSR"),
				Bullet("• WSR/DSR (Kg/Hr)"),
			},
			18,
		),
	}
}

func trendAnalysisSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Trend Analysis Features",
		Body: RenderBody(
			Paragraph{Text: "Advanced Trending Capabilities", Bold: true},
			[]Line{
				Bullet("Multiple time views: Hourly, Daily, Weekly, Monthly"),
				Bullet("Multi-metric selection (up to 4 parameters)"),
				Bullet("Statistical indicators:"),
				SubBullet("- Moving averages (customizable period)"),
				SubBullet("- Control limits (3-sigma)"),
				SubBullet("- Min/Max/Mean/Median statistics"),
				Bullet("Interactive charts with zoom and pan"),
				Bullet("Chart export functionality"),
				Bullet("CSV data export"),
				Bullet("Filter selections shown in exports"),
			},
			16,
		),
	}
}

func advancedAnalyticsSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Advanced Analytics Dashboard",
		Body: RenderBody(
			Paragraph{Text: "Four Comprehensive Analysis Tabs", Bold: true},
			[]Line{
				Header("1. Process Performance"),
				Bullet("• Process Capability Index (Cpk) analysis"),
				Bullet("• Multi-parameter performance radar"),
				Bullet("• Quality score trending"),
				Bullet("• Daily averaging for stability"),
				Header("2. Statistical Analysis"),
				Bullet("• Process stability monitoring"),
				Bullet("• Distribution analysis"),
				Bullet("• Coefficient of variation"),
				Bullet("• Control charts"),
				Header("3. Correlations & Patterns"),
				Bullet("• Parameter correlation matrix"),
				Bullet("• Top quality issues distribution"),
				Bullet("• Pattern recognition"),
				Header("4. Shift Performance"),
				Bullet("• Comparative shift analysis"),
				Bullet("• Performance benchmarking"),
				Bullet("• Production volume tracking"),
			},
			16,
		),
	}
}

func keyInsightsSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Key Insights & Benefits",
		Body: RenderBody(
			Paragraph{Text: "Quality Control Excellence", Bold: true},
			[]Line{
				Bullet("Real-time identification of out-of-spec parameters"),
				Bullet("Early warning system for process deviations"),
				Bullet("Cpk > 1.33 indicates excellent process capability"),
				Bullet("Daily averaging reduces noise in measurements"),
				Header("Operational Efficiency"),
				Bullet("Shift performance comparison identifies best practices"),
				Bullet("Machine parameter tracking optimizes settings"),
				Bullet("Correlation analysis reveals parameter relationships"),
				Header("Data-Driven Decision Making"),
				Bullet("Historical trend analysis for predictive insights"),
				Bullet("Statistical control limits for process stability"),
				Bullet("Comprehensive reporting for management review"),
			},
			16,
		),
	}
}

func processOptimizationSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Process Optimization Insights",
		Body: RenderBody(
			Paragraph{Text: "Critical Parameters to Monitor", Bold: true},
			[]Line{
				Bullet("Moisture content (exclude 0 values for accuracy)"),
				Bullet("MD/CD ratio for sheet strength balance"),
				Bullet("Wet/Dry tensile ratio for absorbency"),
				Bullet("Process stability through control charts"),
				Header("Quality Improvement Opportunities"),
				Bullet("Parameters frequently out of spec"),
				Bullet("Shift-to-shift variations"),
				Bullet("Correlation between defects and parameters"),
				Bullet("Machine speed vs quality trade-offs"),
				Header("Cost Optimization"),
				Bullet("Fiber composition optimization"),
				Bullet("Energy consumption (WSR/DSR rates)"),
				Bullet("Broke percentage reduction"),
				Bullet("Machine efficiency improvements"),
			},
			16,
		),
	}
}

func technicalImplementationSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Technical Implementation",
		Body: RenderBody(
			Paragraph{Text: "Modern Technology Stack", Bold: true},
			[]Line{
				Bullet("React 19 with TypeScript"),
				Bullet("Material-UI v7 for modern UI"),
				Bullet("Recharts for interactive visualizations"),
				Bullet("Day.js for date handling"),
				Bullet("XLSX for Excel file parsing"),
				Bullet("jsPDF for report generation"),
				Header("Data Processing Features"),
				Bullet("Automatic column mapping"),
				Bullet("Intelligent date parsing"),
				Bullet("Data validation and error handling"),
				Bullet("Daily averaging algorithms"),
				Bullet("Statistical calculations"),
				Header("User Experience"),
				Bullet("Responsive design for all devices"),
				Bullet("Intuitive navigation"),
				Bullet("Real-time filtering"),
				Bullet("Export capabilities"),
				Bullet("Performance optimized"),
			},
			16,
		),
	}
}

func futureEnhancementsSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Future Enhancement Opportunities",
		Body: RenderBody(
			Paragraph{Text: "Potential Additions", Bold: true},
			[]Line{
				Header("Machine Learning Integration"),
				Bullet("• Predictive quality alerts"),
				Bullet("• Anomaly detection"),
				Bullet("• Optimal parameter recommendations"),
				Header("Real-time Data Integration"),
				Bullet("• Direct sensor connectivity"),
				Bullet("• Live dashboard updates"),
				Bullet("• Instant notifications"),
				Header("Advanced Analytics"),
				Bullet("• Six Sigma calculations"),
				Bullet("• Root cause analysis"),
				Bullet("• Predictive maintenance"),
				Header("Integration Capabilities"),
				Bullet("• ERP system integration"),
				Bullet("• Mobile app development"),
				Bullet("• API for third-party access"),
			},
			16,
		),
	}
}

func conclusionSlide() Slide {
	return Slide{
		Layout: LayoutContent,
		Title:  "Conclusion",
		Body: RenderBody(
			Paragraph{Text: "Comprehensive Quality Management Solution", Bold: true, Size: 20},
			[]Line{
				Header("Key Benefits:"),
				Bullet("• Improved quality control and consistency"),
				Bullet("• Data-driven decision making"),
				Bullet("• Reduced waste and defects"),
				Bullet("• Enhanced operational efficiency"),
				Bullet("• Better compliance and reporting"),
				Header("Business Impact:"),
				Bullet("• Faster identification of quality issues"),
				Bullet("• Improved customer satisfaction"),
				Bullet("• Cost reduction through optimization"),
				Bullet("• Competitive advantage through analytics"),
				Header("Ready for deployment and continuous improvement"),
			},
			18,
		),
	}
}
