//go:generate mockgen -source=../order_repository.go  -destination=./mock_order_repository.go  -package=mocks
//go:generate mockgen -source=../dish_repository.go   -destination=./mock_dish_repository.go   -package=mocks
//go:generate mockgen -source=../identity.go          -destination=./mock_identity.go          -package=mocks
//go:generate mockgen -source=../order_cache.go       -destination=./mock_order_cache.go       -package=mocks
//go:generate mockgen -source=../event_publisher.go   -destination=./mock_event_publisher.go   -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../message_consumer.go  -destination=./mock_message_consumer.go  -package=mocks
//go:generate mockgen -source=../order_service.go     -destination=./mock_order_service.go     -package=mocks

package mocks
