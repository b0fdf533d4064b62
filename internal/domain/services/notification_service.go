package services

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"ink-supply-service/internal/domain/models"
	"ink-supply-service/internal/infrastructure/config"
	"log"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// InterfaceNotificationService 定义库存通知服务接口
type InterfaceNotificationService interface {
	Connect() error
	Disconnect()
	IsConnectedToBroker() bool
	PublishLowStockAlert(level *models.StockLevel, supplyTypeName string) error
	PublishRequestReviewed(request *models.InkRequest) error
	PublishSystemMessage(message string) error
}

// MQTT主题定义
const (
	// TopicLowStock 低库存告警主题
	TopicLowStock = "ink_supply/stock/low"
	// TopicRequestReviewed 申请审核结果主题
	TopicRequestReviewed = "ink_supply/request/reviewed"
	// TopicSystemMessage 系统消息主题
	TopicSystemMessage = "ink_supply/system"
)

// NotificationService 基于MQTT的库存通知服务实现
type NotificationService struct {
	Config         *config.Config
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.Mutex
	publishMutex   sync.Mutex // 用于保护MQTT消息发布
}

// LowStockAlert 低库存告警消息体
type LowStockAlert struct {
	SupplyTypeID    uint   `json:"supply_type_id"`
	SupplyTypeName  string `json:"supply_type_name"`
	CurrentQuantity int    `json:"current_quantity"`
	MinimumQuantity int    `json:"minimum_quantity"`
	Timestamp       int64  `json:"timestamp"`
}

// RequestReviewedEvent 申请审核结果消息体
type RequestReviewedEvent struct {
	RequestID        uint   `json:"request_id"`
	AccountID        uint   `json:"account_id"`
	SupplyTypeID     uint   `json:"supply_type_id"`
	Status           string `json:"status"`
	ApprovedQuantity *int   `json:"approved_quantity"`
	Timestamp        int64  `json:"timestamp"`
}

// NewNotificationService 创建一个新的库存通知服务
func NewNotificationService(cfg *config.Config) InterfaceNotificationService {
	service := &NotificationService{
		Config:      cfg,
		IsConnected: false,
	}

	// 设置MQTT客户端
	service.setupMQTTClient()

	return service
}

// setupMQTTClient 设置MQTT客户端
func (s *NotificationService) setupMQTTClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s-%d", s.Config.MQTTClientID, uuid.New().String()[:8], time.Now().UnixNano()))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)

	// 添加用户名和密码
	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	// 添加TLS配置，支持SSL连接
	if strings.HasPrefix(s.Config.MQTTBrokerURL, "ssl://") || strings.HasPrefix(s.Config.MQTTBrokerURL, "tls://") || s.Config.MQTTSSLEnabled {
		log.Println("[MQTT] 使用TLS连接")
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true, // 默认跳过验证，如有CA证书则使用
		}

		// 如果提供了CA证书路径，则加载证书
		if s.Config.MQTTCACertPath != "" {
			log.Printf("[MQTT] 使用CA证书: %s", s.Config.MQTTCACertPath)
		}

		opts.SetTLSConfig(tlsConfig)
	}

	// 设置连接丢失回调
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] 连接丢失: %v", err)
		s.connectedMutex.Lock()
		s.IsConnected = false
		s.connectedMutex.Unlock()
	})

	// 设置连接建立回调
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Println("[MQTT] 成功连接到", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.IsConnected = true
		s.connectedMutex.Unlock()
	})

	// 设置重连回调
	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		log.Println("[MQTT] 正在尝试重连...")
	})

	// 创建客户端
	s.Client = mqtt.NewClient(opts)
}

// Connect 连接到MQTT服务器
func (s *NotificationService) Connect() error {
	if token := s.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("连接MQTT服务器失败: %w", token.Error())
	}
	return nil
}

// Disconnect 断开MQTT连接
func (s *NotificationService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}

	s.connectedMutex.Lock()
	s.IsConnected = false
	s.connectedMutex.Unlock()
}

// IsConnectedToBroker 返回当前连接状态
func (s *NotificationService) IsConnectedToBroker() bool {
	s.connectedMutex.Lock()
	defer s.connectedMutex.Unlock()
	return s.IsConnected
}

// publish 序列化并发布消息到指定主题
func (s *NotificationService) publish(topic string, payload interface{}) error {
	s.publishMutex.Lock()
	defer s.publishMutex.Unlock()

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}

	token := s.Client.Publish(topic, byte(s.Config.MQTTQoS), s.Config.MQTTRetained, data)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("发布消息到主题 %s 失败: %w", topic, token.Error())
	}

	return nil
}

// PublishLowStockAlert 发布低库存告警
func (s *NotificationService) PublishLowStockAlert(level *models.StockLevel, supplyTypeName string) error {
	alert := LowStockAlert{
		SupplyTypeID:    level.SupplyTypeID,
		SupplyTypeName:  supplyTypeName,
		CurrentQuantity: level.CurrentQuantity,
		MinimumQuantity: level.MinimumQuantity,
		Timestamp:       time.Now().Unix(),
	}

	return s.publish(TopicLowStock, alert)
}

// PublishRequestReviewed 发布申请审核结果
func (s *NotificationService) PublishRequestReviewed(request *models.InkRequest) error {
	event := RequestReviewedEvent{
		RequestID:        request.ID,
		AccountID:        request.AccountID,
		SupplyTypeID:     request.SupplyTypeID,
		Status:           string(request.Status),
		ApprovedQuantity: request.ApprovedQuantity,
		Timestamp:        time.Now().Unix(),
	}

	return s.publish(TopicRequestReviewed, event)
}

// PublishSystemMessage 发布系统消息
func (s *NotificationService) PublishSystemMessage(message string) error {
	payload := map[string]interface{}{
		"message":   message,
		"timestamp": time.Now().Unix(),
	}

	return s.publish(TopicSystemMessage, payload)
}
