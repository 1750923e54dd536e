package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/worklane-hq/worklane-bff-go/internal/config"
	appHTTP "github.com/worklane-hq/worklane-bff-go/internal/handler/http"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/cache"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/jwt"
	attendanceService "github.com/worklane-hq/worklane-bff-go/internal/service/attendance"
	documentService "github.com/worklane-hq/worklane-bff-go/internal/service/document"
	employeeService "github.com/worklane-hq/worklane-bff-go/internal/service/employee"
	inventoryService "github.com/worklane-hq/worklane-bff-go/internal/service/inventory"
	leaveService "github.com/worklane-hq/worklane-bff-go/internal/service/leave"
	memoService "github.com/worklane-hq/worklane-bff-go/internal/service/memo"
	referenceService "github.com/worklane-hq/worklane-bff-go/internal/service/reference"
	reviewService "github.com/worklane-hq/worklane-bff-go/internal/service/review"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	client, err := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	if err != nil {
		log.Fatal("Failed to initialize upstream client: ", err)
	}

	redisClient, err := cache.New(context.Background(), cfg.Redis.Addr)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}
	referenceCache := cache.NewCache(redisClient, cfg.Redis.ReferenceTTL)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	referenceSvc := referenceService.NewReferenceService(client, referenceCache)
	attendanceSvc := attendanceService.NewAttendanceService(client)
	employeeSvc := employeeService.NewEmployeeService(client, referenceSvc)
	documentSvc := documentService.NewDocumentService(client)
	memoSvc := memoService.NewMemoService(client)
	leaveSvc := leaveService.NewLeaveService(client)
	reviewSvc := reviewService.NewReviewService(client)
	inventorySvc := inventoryService.NewInventoryService(client)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Document:   appHTTP.NewDocumentHandler(documentSvc),
		Memo:       appHTTP.NewMemoHandler(memoSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Review:     appHTTP.NewReviewHandler(reviewSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		Reference:  appHTTP.NewReferenceHandler(referenceSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
