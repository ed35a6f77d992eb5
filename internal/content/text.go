package content

var (
	About = `I'm a software engineer from Chennai who enjoys turning messy data and slow workflows into
	fast, reliable systems. Most of my work sits between Python data pipelines and React front ends,
	and I like owning a feature from the first schema sketch to the dashboard that shows it working.
	When I'm not shipping, I'm usually experimenting with a new framework or helping a friend debug theirs.`

	ProjectPipeline = `High-performance ETL pipeline built with PySpark and Parquet format, processing large
	datasets with optimized performance for financial data analysis.`

	ProjectQuality = `Comprehensive quality management platform built with Flask and SQL, featuring workflow
	automation, reporting, and real-time monitoring capabilities.`

	ProjectReviews = `Interactive dashboard built with React and Express, featuring Kafka integration for
	real-time data streaming and MongoDB for scalable data storage.`
)
