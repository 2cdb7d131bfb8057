// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: kaskeluarga/v1/pipeline.proto

package kaskeluargav1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId   string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType      string                 `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	FileSize      int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	DocumentType  string                 `protobuf:"bytes,6,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	Description   string                 `protobuf:"bytes,8,opt,name=description,proto3" json:"description,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,9,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,10,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`    // RFC 3339
	ProcessedAt   string                 `protobuf:"bytes,11,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"` // RFC 3339, empty until terminal
	FailureReason string                 `protobuf:"bytes,12,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Document) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Document) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

type Suggestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Amount        float64                `protobuf:"fixed64,4,opt,name=amount,proto3" json:"amount,omitempty"` // signed, negative = outflow
	CurrencyCode  string                 `protobuf:"bytes,5,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	TxDate        string                 `protobuf:"bytes,6,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"` // YYYY-MM-DD
	Merchant      string                 `protobuf:"bytes,7,opt,name=merchant,proto3" json:"merchant,omitempty"`
	CategoryId    string                 `protobuf:"bytes,8,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	CategoryName  string                 `protobuf:"bytes,9,opt,name=category_name,json=categoryName,proto3" json:"category_name,omitempty"`
	Confidence    float32                `protobuf:"fixed32,10,opt,name=confidence,proto3" json:"confidence,omitempty"`
	SourceType    string                 `protobuf:"bytes,11,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	LineItemIndex int32                  `protobuf:"varint,12,opt,name=line_item_index,json=lineItemIndex,proto3" json:"line_item_index,omitempty"` // -1 when not a line item
	Approved      bool                   `protobuf:"varint,13,opt,name=approved,proto3" json:"approved,omitempty"`
	TransactionId string                 `protobuf:"bytes,14,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Suggestion) Reset() {
	*x = Suggestion{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Suggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Suggestion) ProtoMessage() {}

func (x *Suggestion) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Suggestion.ProtoReflect.Descriptor instead.
func (*Suggestion) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{1}
}

func (x *Suggestion) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Suggestion) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Suggestion) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Suggestion) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Suggestion) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Suggestion) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Suggestion) GetMerchant() string {
	if x != nil {
		return x.Merchant
	}
	return ""
}

func (x *Suggestion) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Suggestion) GetCategoryName() string {
	if x != nil {
		return x.CategoryName
	}
	return ""
}

func (x *Suggestion) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Suggestion) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *Suggestion) GetLineItemIndex() int32 {
	if x != nil {
		return x.LineItemIndex
	}
	return 0
}

func (x *Suggestion) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

func (x *Suggestion) GetTransactionId() string {
	if x != nil {
		return x.TransactionId
	}
	return ""
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId   string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	AccountId     string                 `protobuf:"bytes,3,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	CategoryId    string                 `protobuf:"bytes,4,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Amount        float64                `protobuf:"fixed64,6,opt,name=amount,proto3" json:"amount,omitempty"` // absolute value
	CurrencyCode  string                 `protobuf:"bytes,7,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Flow          string                 `protobuf:"bytes,8,opt,name=flow,proto3" json:"flow,omitempty"` // EXPENSE or INCOME
	Merchant      string                 `protobuf:"bytes,9,opt,name=merchant,proto3" json:"merchant,omitempty"`
	TxDate        string                 `protobuf:"bytes,10,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"` // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{2}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *Transaction) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Transaction) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Transaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Transaction) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Transaction) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Transaction) GetFlow() string {
	if x != nil {
		return x.Flow
	}
	return ""
}

func (x *Transaction) GetMerchant() string {
	if x != nil {
		return x.Merchant
	}
	return ""
}

func (x *Transaction) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,2,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType      string                 `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	DocumentType  string                 `protobuf:"bytes,5,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,6,opt,name=content,proto3" json:"content,omitempty"`
	Description   string                 `protobuf:"bytes,7,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{3}
}

func (x *UploadDocumentRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *UploadDocumentRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *UploadDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadDocumentRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{4}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ProcessDocumentRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ForceReprocess bool                   `protobuf:"varint,2,opt,name=force_reprocess,json=forceReprocess,proto3" json:"force_reprocess,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{9}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetForceReprocess() bool {
	if x != nil {
		return x.ForceReprocess
	}
	return false
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{10}
}

func (x *ProcessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetSuggestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSuggestionsRequest) Reset() {
	*x = GetSuggestionsRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSuggestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSuggestionsRequest) ProtoMessage() {}

func (x *GetSuggestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSuggestionsRequest.ProtoReflect.Descriptor instead.
func (*GetSuggestionsRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{11}
}

func (x *GetSuggestionsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetSuggestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suggestions   []*Suggestion          `protobuf:"bytes,1,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSuggestionsResponse) Reset() {
	*x = GetSuggestionsResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSuggestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSuggestionsResponse) ProtoMessage() {}

func (x *GetSuggestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSuggestionsResponse.ProtoReflect.Descriptor instead.
func (*GetSuggestionsResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{12}
}

func (x *GetSuggestionsResponse) GetSuggestions() []*Suggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type SuggestionCorrections struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   *string                `protobuf:"bytes,1,opt,name=description,proto3,oneof" json:"description,omitempty"`
	Amount        *float64               `protobuf:"fixed64,2,opt,name=amount,proto3,oneof" json:"amount,omitempty"`
	TxDate        *string                `protobuf:"bytes,3,opt,name=tx_date,json=txDate,proto3,oneof" json:"tx_date,omitempty"` // YYYY-MM-DD
	CategoryId    *string                `protobuf:"bytes,4,opt,name=category_id,json=categoryId,proto3,oneof" json:"category_id,omitempty"`
	Merchant      *string                `protobuf:"bytes,5,opt,name=merchant,proto3,oneof" json:"merchant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SuggestionCorrections) Reset() {
	*x = SuggestionCorrections{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SuggestionCorrections) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SuggestionCorrections) ProtoMessage() {}

func (x *SuggestionCorrections) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SuggestionCorrections.ProtoReflect.Descriptor instead.
func (*SuggestionCorrections) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{13}
}

func (x *SuggestionCorrections) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *SuggestionCorrections) GetAmount() float64 {
	if x != nil && x.Amount != nil {
		return *x.Amount
	}
	return 0
}

func (x *SuggestionCorrections) GetTxDate() string {
	if x != nil && x.TxDate != nil {
		return *x.TxDate
	}
	return ""
}

func (x *SuggestionCorrections) GetCategoryId() string {
	if x != nil && x.CategoryId != nil {
		return *x.CategoryId
	}
	return ""
}

func (x *SuggestionCorrections) GetMerchant() string {
	if x != nil && x.Merchant != nil {
		return *x.Merchant
	}
	return ""
}

type ApproveSuggestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SuggestionId  string                 `protobuf:"bytes,1,opt,name=suggestion_id,json=suggestionId,proto3" json:"suggestion_id,omitempty"`
	AccountId     string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Corrections   *SuggestionCorrections `protobuf:"bytes,4,opt,name=corrections,proto3" json:"corrections,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveSuggestionRequest) Reset() {
	*x = ApproveSuggestionRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveSuggestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveSuggestionRequest) ProtoMessage() {}

func (x *ApproveSuggestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveSuggestionRequest.ProtoReflect.Descriptor instead.
func (*ApproveSuggestionRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{14}
}

func (x *ApproveSuggestionRequest) GetSuggestionId() string {
	if x != nil {
		return x.SuggestionId
	}
	return ""
}

func (x *ApproveSuggestionRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ApproveSuggestionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ApproveSuggestionRequest) GetCorrections() *SuggestionCorrections {
	if x != nil {
		return x.Corrections
	}
	return nil
}

type ApproveSuggestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *Transaction           `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveSuggestionResponse) Reset() {
	*x = ApproveSuggestionResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveSuggestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveSuggestionResponse) ProtoMessage() {}

func (x *ApproveSuggestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveSuggestionResponse.ProtoReflect.Descriptor instead.
func (*ApproveSuggestionResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{15}
}

func (x *ApproveSuggestionResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type GetHouseholdSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHouseholdSummaryRequest) Reset() {
	*x = GetHouseholdSummaryRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHouseholdSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHouseholdSummaryRequest) ProtoMessage() {}

func (x *GetHouseholdSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHouseholdSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetHouseholdSummaryRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{16}
}

func (x *GetHouseholdSummaryRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *GetHouseholdSummaryRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *GetHouseholdSummaryRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type CurrencyTotal struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	CurrencyCode     string                 `protobuf:"bytes,1,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Net              float64                `protobuf:"fixed64,2,opt,name=net,proto3" json:"net,omitempty"` // signed sum over one currency
	TransactionCount int32                  `protobuf:"varint,3,opt,name=transaction_count,json=transactionCount,proto3" json:"transaction_count,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CurrencyTotal) Reset() {
	*x = CurrencyTotal{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CurrencyTotal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CurrencyTotal) ProtoMessage() {}

func (x *CurrencyTotal) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CurrencyTotal.ProtoReflect.Descriptor instead.
func (*CurrencyTotal) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{17}
}

func (x *CurrencyTotal) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *CurrencyTotal) GetNet() float64 {
	if x != nil {
		return x.Net
	}
	return 0
}

func (x *CurrencyTotal) GetTransactionCount() int32 {
	if x != nil {
		return x.TransactionCount
	}
	return 0
}

type GetHouseholdSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Totals        []*CurrencyTotal       `protobuf:"bytes,1,rep,name=totals,proto3" json:"totals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHouseholdSummaryResponse) Reset() {
	*x = GetHouseholdSummaryResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHouseholdSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHouseholdSummaryResponse) ProtoMessage() {}

func (x *GetHouseholdSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHouseholdSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetHouseholdSummaryResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{18}
}

func (x *GetHouseholdSummaryResponse) GetTotals() []*CurrencyTotal {
	if x != nil {
		return x.Totals
	}
	return nil
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{19}
}

func (x *ExportTransactionsRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ExportTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kaskeluarga_v1_pipeline_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_kaskeluarga_v1_pipeline_proto_rawDescGZIP(), []int{20}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_kaskeluarga_v1_pipeline_proto protoreflect.FileDescriptor

const file_kaskeluarga_v1_pipeline_proto_rawDesc = "" +
	"\n" +
	"\x1dkaskeluarga/v1/pipeline.proto\x12\x0ekaskeluarga.v1\"\xff\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x04 \x01(\tR\bmimeType\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12#\n" +
	"\rdocument_type\x18\x06 \x01(\tR\fdocumentType\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12 \n" +
	"\vdescription\x18\b \x01(\tR\vdescription\x12\x1f\n" +
	"\vuploaded_by\x18\t \x01(\tR\n" +
	"uploadedBy\x12\x1f\n" +
	"\vuploaded_at\x18\n" +
	" \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\v \x01(\tR\vprocessedAt\x12%\n" +
	"\x0efailure_reason\x18\f \x01(\tR\rfailureReason\"\xc3\x03\n" +
	"\n" +
	"Suggestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\x01R\x06amount\x12#\n" +
	"\rcurrency_code\x18\x05 \x01(\tR\fcurrencyCode\x12\x17\n" +
	"\atx_date\x18\x06 \x01(\tR\x06txDate\x12\x1a\n" +
	"\bmerchant\x18\a \x01(\tR\bmerchant\x12\x1f\n" +
	"\vcategory_id\x18\b \x01(\tR\n" +
	"categoryId\x12#\n" +
	"\rcategory_name\x18\t \x01(\tR\fcategoryName\x12\x1e\n" +
	"\n" +
	"confidence\x18\n" +
	" \x01(\x02R\n" +
	"confidence\x12\x1f\n" +
	"\vsource_type\x18\v \x01(\tR\n" +
	"sourceType\x12&\n" +
	"\x0fline_item_index\x18\f \x01(\x05R\rlineItemIndex\x12\x1a\n" +
	"\bapproved\x18\r \x01(\bR\bapproved\x12%\n" +
	"\x0etransaction_id\x18\x0e \x01(\tR\rtransactionId\"\xa8\x02\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x03 \x01(\tR\taccountId\x12\x1f\n" +
	"\vcategory_id\x18\x04 \x01(\tR\n" +
	"categoryId\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x06 \x01(\x01R\x06amount\x12#\n" +
	"\rcurrency_code\x18\a \x01(\tR\fcurrencyCode\x12\x12\n" +
	"\x04flow\x18\b \x01(\tR\x04flow\x12\x1a\n" +
	"\bmerchant\x18\t \x01(\tR\bmerchant\x12\x17\n" +
	"\atx_date\x18\n" +
	" \x01(\tR\x06txDate\"\xf6\x01\n" +
	"\x15UploadDocumentRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1f\n" +
	"\vuploaded_by\x18\x02 \x01(\tR\n" +
	"uploadedBy\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x04 \x01(\tR\bmimeType\x12#\n" +
	"\rdocument_type\x18\x05 \x01(\tR\fdocumentType\x12\x18\n" +
	"\acontent\x18\x06 \x01(\fR\acontent\x12 \n" +
	"\vdescription\x18\a \x01(\tR\vdescription\"N\n" +
	"\x16UploadDocumentResponse\x124\n" +
	"\bdocument\x18\x01 \x01(\v2\x18.kaskeluarga.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"K\n" +
	"\x13GetDocumentResponse\x124\n" +
	"\bdocument\x18\x01 \x01(\v2\x18.kaskeluarga.v1.DocumentR\bdocument\"9\n" +
	"\x14ListDocumentsRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\"O\n" +
	"\x15ListDocumentsResponse\x126\n" +
	"\tdocuments\x18\x01 \x03(\v2\x18.kaskeluarga.v1.DocumentR\tdocuments\"b\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12'\n" +
	"\x0fforce_reprocess\x18\x02 \x01(\bR\x0eforceReprocess\"O\n" +
	"\x17ProcessDocumentResponse\x124\n" +
	"\bdocument\x18\x01 \x01(\v2\x18.kaskeluarga.v1.DocumentR\bdocument\"8\n" +
	"\x15GetSuggestionsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"V\n" +
	"\x16GetSuggestionsResponse\x12<\n" +
	"\vsuggestions\x18\x01 \x03(\v2\x1a.kaskeluarga.v1.SuggestionR\vsuggestions\"\x84\x02\n" +
	"\x15SuggestionCorrections\x12%\n" +
	"\vdescription\x18\x01 \x01(\tH\x00R\vdescription\x88\x01\x01\x12\x1b\n" +
	"\x06amount\x18\x02 \x01(\x01H\x01R\x06amount\x88\x01\x01\x12\x1c\n" +
	"\atx_date\x18\x03 \x01(\tH\x02R\x06txDate\x88\x01\x01\x12$\n" +
	"\vcategory_id\x18\x04 \x01(\tH\x03R\n" +
	"categoryId\x88\x01\x01\x12\x1f\n" +
	"\bmerchant\x18\x05 \x01(\tH\x04R\bmerchant\x88\x01\x01B\x0e\n" +
	"\f_descriptionB\t\n" +
	"\a_amountB\n" +
	"\n" +
	"\b_tx_dateB\x0e\n" +
	"\f_category_idB\v\n" +
	"\t_merchant\"\xc0\x01\n" +
	"\x18ApproveSuggestionRequest\x12#\n" +
	"\rsuggestion_id\x18\x01 \x01(\tR\fsuggestionId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\tR\taccountId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12G\n" +
	"\vcorrections\x18\x04 \x01(\v2%.kaskeluarga.v1.SuggestionCorrectionsR\vcorrections\"Z\n" +
	"\x19ApproveSuggestionResponse\x12=\n" +
	"\vtransaction\x18\x01 \x01(\v2\x1b.kaskeluarga.v1.TransactionR\vtransaction\"u\n" +
	"\x1aGetHouseholdSummaryRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"s\n" +
	"\rCurrencyTotal\x12#\n" +
	"\rcurrency_code\x18\x01 \x01(\tR\fcurrencyCode\x12\x10\n" +
	"\x03net\x18\x02 \x01(\x01R\x03net\x12+\n" +
	"\x11transaction_count\x18\x03 \x01(\x05R\x10transactionCount\"T\n" +
	"\x1bGetHouseholdSummaryResponse\x125\n" +
	"\x06totals\x18\x01 \x03(\v2\x1d.kaskeluarga.v1.CurrencyTotalR\x06totals\"t\n" +
	"\x19ExportTransactionsRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"0\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xed\x03\n" +
	"\x0fDocumentService\x12_\n" +
	"\x0eUploadDocument\x12%.kaskeluarga.v1.UploadDocumentRequest\x1a&.kaskeluarga.v1.UploadDocumentResponse\x12V\n" +
	"\vGetDocument\x12\".kaskeluarga.v1.GetDocumentRequest\x1a#.kaskeluarga.v1.GetDocumentResponse\x12\\\n" +
	"\rListDocuments\x12$.kaskeluarga.v1.ListDocumentsRequest\x1a%.kaskeluarga.v1.ListDocumentsResponse\x12b\n" +
	"\x0fProcessDocument\x12&.kaskeluarga.v1.ProcessDocumentRequest\x1a'.kaskeluarga.v1.ProcessDocumentResponse\x12_\n" +
	"\x0eGetSuggestions\x12%.kaskeluarga.v1.GetSuggestionsRequest\x1a&.kaskeluarga.v1.GetSuggestionsResponse2\xeb\x01\n" +
	"\x0fApprovalService\x12h\n" +
	"\x11ApproveSuggestion\x12(.kaskeluarga.v1.ApproveSuggestionRequest\x1a).kaskeluarga.v1.ApproveSuggestionResponse\x12n\n" +
	"\x13GetHouseholdSummary\x12*.kaskeluarga.v1.GetHouseholdSummaryRequest\x1a+.kaskeluarga.v1.GetHouseholdSummaryResponse2|\n" +
	"\rExportService\x12k\n" +
	"\x12ExportTransactions\x12).kaskeluarga.v1.ExportTransactionsRequest\x1a*.kaskeluarga.v1.ExportTransactionsResponseBMZKgithub.com/prasetyo-adi/kas-keluarga/gen/proto/kaskeluarga/v1;kaskeluargav1b\x06proto3"

var (
	file_kaskeluarga_v1_pipeline_proto_rawDescOnce sync.Once
	file_kaskeluarga_v1_pipeline_proto_rawDescData []byte
)

func file_kaskeluarga_v1_pipeline_proto_rawDescGZIP() []byte {
	file_kaskeluarga_v1_pipeline_proto_rawDescOnce.Do(func() {
		file_kaskeluarga_v1_pipeline_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kaskeluarga_v1_pipeline_proto_rawDesc), len(file_kaskeluarga_v1_pipeline_proto_rawDesc)))
	})
	return file_kaskeluarga_v1_pipeline_proto_rawDescData
}

var file_kaskeluarga_v1_pipeline_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_kaskeluarga_v1_pipeline_proto_goTypes = []any{
	(*Document)(nil),                    // 0: kaskeluarga.v1.Document
	(*Suggestion)(nil),                  // 1: kaskeluarga.v1.Suggestion
	(*Transaction)(nil),                 // 2: kaskeluarga.v1.Transaction
	(*UploadDocumentRequest)(nil),       // 3: kaskeluarga.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),      // 4: kaskeluarga.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),          // 5: kaskeluarga.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),         // 6: kaskeluarga.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),        // 7: kaskeluarga.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),       // 8: kaskeluarga.v1.ListDocumentsResponse
	(*ProcessDocumentRequest)(nil),      // 9: kaskeluarga.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),     // 10: kaskeluarga.v1.ProcessDocumentResponse
	(*GetSuggestionsRequest)(nil),       // 11: kaskeluarga.v1.GetSuggestionsRequest
	(*GetSuggestionsResponse)(nil),      // 12: kaskeluarga.v1.GetSuggestionsResponse
	(*SuggestionCorrections)(nil),       // 13: kaskeluarga.v1.SuggestionCorrections
	(*ApproveSuggestionRequest)(nil),    // 14: kaskeluarga.v1.ApproveSuggestionRequest
	(*ApproveSuggestionResponse)(nil),   // 15: kaskeluarga.v1.ApproveSuggestionResponse
	(*GetHouseholdSummaryRequest)(nil),  // 16: kaskeluarga.v1.GetHouseholdSummaryRequest
	(*CurrencyTotal)(nil),               // 17: kaskeluarga.v1.CurrencyTotal
	(*GetHouseholdSummaryResponse)(nil), // 18: kaskeluarga.v1.GetHouseholdSummaryResponse
	(*ExportTransactionsRequest)(nil),   // 19: kaskeluarga.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil),  // 20: kaskeluarga.v1.ExportTransactionsResponse
}
var file_kaskeluarga_v1_pipeline_proto_depIdxs = []int32{
	0,  // 0: kaskeluarga.v1.UploadDocumentResponse.document:type_name -> kaskeluarga.v1.Document
	0,  // 1: kaskeluarga.v1.GetDocumentResponse.document:type_name -> kaskeluarga.v1.Document
	0,  // 2: kaskeluarga.v1.ListDocumentsResponse.documents:type_name -> kaskeluarga.v1.Document
	0,  // 3: kaskeluarga.v1.ProcessDocumentResponse.document:type_name -> kaskeluarga.v1.Document
	1,  // 4: kaskeluarga.v1.GetSuggestionsResponse.suggestions:type_name -> kaskeluarga.v1.Suggestion
	13, // 5: kaskeluarga.v1.ApproveSuggestionRequest.corrections:type_name -> kaskeluarga.v1.SuggestionCorrections
	2,  // 6: kaskeluarga.v1.ApproveSuggestionResponse.transaction:type_name -> kaskeluarga.v1.Transaction
	17, // 7: kaskeluarga.v1.GetHouseholdSummaryResponse.totals:type_name -> kaskeluarga.v1.CurrencyTotal
	3,  // 8: kaskeluarga.v1.DocumentService.UploadDocument:input_type -> kaskeluarga.v1.UploadDocumentRequest
	5,  // 9: kaskeluarga.v1.DocumentService.GetDocument:input_type -> kaskeluarga.v1.GetDocumentRequest
	7,  // 10: kaskeluarga.v1.DocumentService.ListDocuments:input_type -> kaskeluarga.v1.ListDocumentsRequest
	9,  // 11: kaskeluarga.v1.DocumentService.ProcessDocument:input_type -> kaskeluarga.v1.ProcessDocumentRequest
	11, // 12: kaskeluarga.v1.DocumentService.GetSuggestions:input_type -> kaskeluarga.v1.GetSuggestionsRequest
	14, // 13: kaskeluarga.v1.ApprovalService.ApproveSuggestion:input_type -> kaskeluarga.v1.ApproveSuggestionRequest
	16, // 14: kaskeluarga.v1.ApprovalService.GetHouseholdSummary:input_type -> kaskeluarga.v1.GetHouseholdSummaryRequest
	19, // 15: kaskeluarga.v1.ExportService.ExportTransactions:input_type -> kaskeluarga.v1.ExportTransactionsRequest
	4,  // 16: kaskeluarga.v1.DocumentService.UploadDocument:output_type -> kaskeluarga.v1.UploadDocumentResponse
	6,  // 17: kaskeluarga.v1.DocumentService.GetDocument:output_type -> kaskeluarga.v1.GetDocumentResponse
	8,  // 18: kaskeluarga.v1.DocumentService.ListDocuments:output_type -> kaskeluarga.v1.ListDocumentsResponse
	10, // 19: kaskeluarga.v1.DocumentService.ProcessDocument:output_type -> kaskeluarga.v1.ProcessDocumentResponse
	12, // 20: kaskeluarga.v1.DocumentService.GetSuggestions:output_type -> kaskeluarga.v1.GetSuggestionsResponse
	15, // 21: kaskeluarga.v1.ApprovalService.ApproveSuggestion:output_type -> kaskeluarga.v1.ApproveSuggestionResponse
	18, // 22: kaskeluarga.v1.ApprovalService.GetHouseholdSummary:output_type -> kaskeluarga.v1.GetHouseholdSummaryResponse
	20, // 23: kaskeluarga.v1.ExportService.ExportTransactions:output_type -> kaskeluarga.v1.ExportTransactionsResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_kaskeluarga_v1_pipeline_proto_init() }
func file_kaskeluarga_v1_pipeline_proto_init() {
	if File_kaskeluarga_v1_pipeline_proto != nil {
		return
	}
	file_kaskeluarga_v1_pipeline_proto_msgTypes[13].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kaskeluarga_v1_pipeline_proto_rawDesc), len(file_kaskeluarga_v1_pipeline_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_kaskeluarga_v1_pipeline_proto_goTypes,
		DependencyIndexes: file_kaskeluarga_v1_pipeline_proto_depIdxs,
		MessageInfos:      file_kaskeluarga_v1_pipeline_proto_msgTypes,
	}.Build()
	File_kaskeluarga_v1_pipeline_proto = out.File
	file_kaskeluarga_v1_pipeline_proto_goTypes = nil
	file_kaskeluarga_v1_pipeline_proto_depIdxs = nil
}
