package kafka

//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
