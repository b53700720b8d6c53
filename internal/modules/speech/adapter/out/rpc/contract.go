package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey     = "speech"
	serviceName      = "zenpod.speech.v1.SpeechEngine"
	jsonCodecName    = "json"
	methodListVoices = "/" + serviceName + "/ListVoices"
	methodSpeak      = "/" + serviceName + "/Speak"
	methodStatus     = "/" + serviceName + "/Status"
	methodResume     = "/" + serviceName + "/Resume"
	methodCancel     = "/" + serviceName + "/Cancel"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "ZENPOD_SPEECH",
	MagicCookieValue: "zenpod",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type VoiceDescriptor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Lang    string `json:"lang"`
	Default bool   `json:"default"`
}

type ListVoicesResponse struct {
	Voices []VoiceDescriptor `json:"voices"`
}

type SpeakRequest struct {
	UtteranceID string  `json:"utterance_id"`
	Text        string  `json:"text"`
	Lang        string  `json:"lang"`
	Rate        float64 `json:"rate"`
	Pitch       float64 `json:"pitch"`
	VoiceID     string  `json:"voice_id"`
}

type StatusResponse struct {
	Speaking bool `json:"speaking"`
	Paused   bool `json:"paused"`
}

type SpeechEngineServer interface {
	ListVoices(ctx context.Context, in *Empty) (*ListVoicesResponse, error)
	Speak(ctx context.Context, in *SpeakRequest) (*Empty, error)
	Status(ctx context.Context, in *Empty) (*StatusResponse, error)
	Resume(ctx context.Context, in *Empty) (*Empty, error)
	Cancel(ctx context.Context, in *Empty) (*Empty, error)
}

type SpeechEngineClient interface {
	ListVoices(ctx context.Context) (*ListVoicesResponse, error)
	Speak(ctx context.Context, in *SpeakRequest) error
	Status(ctx context.Context) (*StatusResponse, error)
	Resume(ctx context.Context) error
	Cancel(ctx context.Context) error
}

type speechEngineClient struct {
	conn *grpc.ClientConn
}

func NewSpeechEngineClient(conn *grpc.ClientConn) SpeechEngineClient {
	return &speechEngineClient{conn: conn}
}

func (c *speechEngineClient) ListVoices(ctx context.Context) (*ListVoicesResponse, error) {
	out := &ListVoicesResponse{}
	if err := c.conn.Invoke(ctx, methodListVoices, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *speechEngineClient) Speak(ctx context.Context, in *SpeakRequest) error {
	return c.conn.Invoke(ctx, methodSpeak, in, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func (c *speechEngineClient) Status(ctx context.Context) (*StatusResponse, error) {
	out := &StatusResponse{}
	if err := c.conn.Invoke(ctx, methodStatus, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *speechEngineClient) Resume(ctx context.Context) error {
	return c.conn.Invoke(ctx, methodResume, &Empty{}, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func (c *speechEngineClient) Cancel(ctx context.Context) error {
	return c.conn.Invoke(ctx, methodCancel, &Empty{}, &Empty{}, grpc.CallContentSubtype(jsonCodecName))
}

func RegisterSpeechEngineServer(server grpc.ServiceRegistrar, impl SpeechEngineServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*SpeechEngineServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "ListVoices",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.ListVoices(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListVoices}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.ListVoices(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Speak",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &SpeakRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Speak(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSpeak}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*SpeakRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Speak(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Status",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Status(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodStatus}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Status(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Resume",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Resume(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodResume}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Resume(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Cancel",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Cancel(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCancel}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Cancel(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/speech-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl SpeechEngineServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterSpeechEngineServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewSpeechEngineClient(conn), nil
}

func PluginMap(impl SpeechEngineServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
