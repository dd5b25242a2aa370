package clangast

// Catalogue of node kinds emitted by `clang -Xclang -ast-dump=json`. Names
// outside this list decode as KindOther carrying the raw name.
const (
	KindNull KindCode = iota
	KindOther

	// Declarations
	KindAccessSpecDecl
	KindBindingDecl
	KindBlockDecl
	KindBuiltinTemplateDecl
	KindCapturedDecl
	KindClassTemplateDecl
	KindClassTemplatePartialSpecializationDecl
	KindClassTemplateSpecializationDecl
	KindConceptDecl
	KindCXXConstructorDecl
	KindCXXConversionDecl
	KindCXXDeductionGuideDecl
	KindCXXDestructorDecl
	KindCXXMethodDecl
	KindCXXRecordDecl
	KindDecompositionDecl
	KindEmptyDecl
	KindEnumConstantDecl
	KindEnumDecl
	KindExportDecl
	KindFieldDecl
	KindFileScopeAsmDecl
	KindFriendDecl
	KindFriendTemplateDecl
	KindFunctionDecl
	KindFunctionTemplateDecl
	KindImplicitConceptSpecializationDecl
	KindImplicitParamDecl
	KindImportDecl
	KindIndirectFieldDecl
	KindLabelDecl
	KindLinkageSpecDecl
	KindNamespaceAliasDecl
	KindNamespaceDecl
	KindNonTypeTemplateParmDecl
	KindParmVarDecl
	KindPragmaCommentDecl
	KindPragmaDetectMismatchDecl
	KindRecordDecl
	KindRequiresExprBodyDecl
	KindStaticAssertDecl
	KindTemplateTemplateParmDecl
	KindTemplateTypeParmDecl
	KindTranslationUnitDecl
	KindTypeAliasDecl
	KindTypeAliasTemplateDecl
	KindTypedefDecl
	KindUnresolvedUsingTypenameDecl
	KindUnresolvedUsingValueDecl
	KindUsingDecl
	KindUsingDirectiveDecl
	KindUsingEnumDecl
	KindUsingPackDecl
	KindUsingShadowDecl
	KindConstructorUsingShadowDecl
	KindVarDecl
	KindVarTemplateDecl
	KindVarTemplatePartialSpecializationDecl
	KindVarTemplateSpecializationDecl

	// Statements
	KindAttributedStmt
	KindBreakStmt
	KindCaseStmt
	KindCompoundStmt
	KindContinueStmt
	KindCoreturnStmt
	KindCoroutineBodyStmt
	KindCXXCatchStmt
	KindCXXForRangeStmt
	KindCXXTryStmt
	KindDeclStmt
	KindDefaultStmt
	KindDoStmt
	KindForStmt
	KindGCCAsmStmt
	KindGotoStmt
	KindIfStmt
	KindIndirectGotoStmt
	KindLabelStmt
	KindMSAsmStmt
	KindNullStmt
	KindReturnStmt
	KindSwitchStmt
	KindWhileStmt

	// Expressions
	KindArrayInitIndexExpr
	KindArrayInitLoopExpr
	KindArraySubscriptExpr
	KindAtomicExpr
	KindBinaryConditionalOperator
	KindBinaryOperator
	KindBlockExpr
	KindBuiltinBitCastExpr
	KindCallExpr
	KindCharacterLiteral
	KindChooseExpr
	KindCompoundAssignOperator
	KindCompoundLiteralExpr
	KindConceptSpecializationExpr
	KindConditionalOperator
	KindConstantExpr
	KindConvertVectorExpr
	KindCoawaitExpr
	KindCoyieldExpr
	KindCStyleCastExpr
	KindCXXAddrspaceCastExpr
	KindCXXBindTemporaryExpr
	KindCXXBoolLiteralExpr
	KindCXXConstCastExpr
	KindCXXConstructExpr
	KindCXXDefaultArgExpr
	KindCXXDefaultInitExpr
	KindCXXDeleteExpr
	KindCXXDependentScopeMemberExpr
	KindCXXDynamicCastExpr
	KindCXXFoldExpr
	KindCXXFunctionalCastExpr
	KindCXXInheritedCtorInitExpr
	KindCXXMemberCallExpr
	KindCXXNewExpr
	KindCXXNoexceptExpr
	KindCXXNullPtrLiteralExpr
	KindCXXOperatorCallExpr
	KindCXXParenListInitExpr
	KindCXXPseudoDestructorExpr
	KindCXXReinterpretCastExpr
	KindCXXRewrittenBinaryOperator
	KindCXXScalarValueInitExpr
	KindCXXStaticCastExpr
	KindCXXStdInitializerListExpr
	KindCXXTemporaryObjectExpr
	KindCXXThisExpr
	KindCXXThrowExpr
	KindCXXTypeidExpr
	KindCXXUnresolvedConstructExpr
	KindCXXUuidofExpr
	KindDeclRefExpr
	KindDependentCoawaitExpr
	KindDependentScopeDeclRefExpr
	KindDesignatedInitExpr
	KindDesignatedInitUpdateExpr
	KindExprWithCleanups
	KindExtVectorElementExpr
	KindFixedPointLiteral
	KindFloatingLiteral
	KindFunctionParmPackExpr
	KindGenericSelectionExpr
	KindGNUNullExpr
	KindImaginaryLiteral
	KindImplicitCastExpr
	KindImplicitValueInitExpr
	KindInitListExpr
	KindIntegerLiteral
	KindLambdaExpr
	KindMaterializeTemporaryExpr
	KindMatrixSubscriptExpr
	KindMemberExpr
	KindNoInitExpr
	KindOffsetOfExpr
	KindOpaqueValueExpr
	KindPackExpansionExpr
	KindParenExpr
	KindParenListExpr
	KindPredefinedExpr
	KindPseudoObjectExpr
	KindRecoveryExpr
	KindRequiresExpr
	KindShuffleVectorExpr
	KindSizeOfPackExpr
	KindSourceLocExpr
	KindStmtExpr
	KindStringLiteral
	KindSubstNonTypeTemplateParmExpr
	KindSubstNonTypeTemplateParmPackExpr
	KindTypeTraitExpr
	KindUnaryExprOrTypeTraitExpr
	KindUnaryOperator
	KindUnresolvedLookupExpr
	KindUnresolvedMemberExpr
	KindUserDefinedLiteral
	KindVAArgExpr

	// Types
	KindAdjustedType
	KindAtomicType
	KindAttributedType
	KindAutoType
	KindBitIntType
	KindBlockPointerType
	KindBTFTagAttributedType
	KindBuiltinType
	KindComplexType
	KindConstantArrayType
	KindConstantMatrixType
	KindDecayedType
	KindDecltypeType
	KindDeducedTemplateSpecializationType
	KindDependentAddressSpaceType
	KindDependentBitIntType
	KindDependentNameType
	KindDependentSizedArrayType
	KindDependentSizedExtVectorType
	KindDependentTemplateSpecializationType
	KindDependentVectorType
	KindElaboratedType
	KindEnumType
	KindExtVectorType
	KindFunctionNoProtoType
	KindFunctionProtoType
	KindIncompleteArrayType
	KindInjectedClassNameType
	KindLValueReferenceType
	KindMacroQualifiedType
	KindMemberPointerType
	KindPackExpansionType
	KindParenType
	KindPipeType
	KindPointerType
	KindQualType
	KindRecordType
	KindRValueReferenceType
	KindSubstTemplateTypeParmPackType
	KindSubstTemplateTypeParmType
	KindTemplateSpecializationType
	KindTemplateTypeParmType
	KindTypedefType
	KindTypeOfExprType
	KindTypeOfType
	KindUnaryTransformType
	KindUnresolvedUsingType
	KindUsingType
	KindVariableArrayType
	KindVectorType

	// Attributes
	KindAbiTagAttr
	KindAliasAttr
	KindAlignedAttr
	KindAllocAlignAttr
	KindAllocSizeAttr
	KindAlwaysInlineAttr
	KindAnnotateAttr
	KindArtificialAttr
	KindAsmLabelAttr
	KindAvailabilityAttr
	KindBuiltinAttr
	KindCleanupAttr
	KindColdAttr
	KindConstAttr
	KindConstInitAttr
	KindConstructorAttr
	KindCXX11NoReturnAttr
	KindDeprecatedAttr
	KindDestructorAttr
	KindDiagnoseIfAttr
	KindEnableIfAttr
	KindExcludeFromExplicitInstantiationAttr
	KindFallThroughAttr
	KindFinalAttr
	KindFlattenAttr
	KindFormatArgAttr
	KindFormatAttr
	KindGNUInlineAttr
	KindHotAttr
	KindInternalLinkageAttr
	KindLeafAttr
	KindLifetimeBoundAttr
	KindLikelyAttr
	KindMaxFieldAlignmentAttr
	KindMayAliasAttr
	KindModeAttr
	KindNoDebugAttr
	KindNoEscapeAttr
	KindNoInlineAttr
	KindNoSanitizeAttr
	KindNoThrowAttr
	KindNoUniqueAddressAttr
	KindNonNullAttr
	KindOverrideAttr
	KindPackedAttr
	KindPreferredNameAttr
	KindPureAttr
	KindRestrictAttr
	KindReturnsNonNullAttr
	KindReturnsTwiceAttr
	KindSectionAttr
	KindSentinelAttr
	KindTypeVisibilityAttr
	KindUnavailableAttr
	KindUnlikelyAttr
	KindUnusedAttr
	KindUsedAttr
	KindVisibilityAttr
	KindWarnUnusedResultAttr
	KindWeakAttr
	KindWeakImportAttr
	KindWeakRefAttr

	// Comments
	KindBlockCommandComment
	KindFullComment
	KindHTMLEndTagComment
	KindHTMLStartTagComment
	KindInlineCommandComment
	KindParagraphComment
	KindParamCommandComment
	KindTextComment
	KindTParamCommandComment
	KindVerbatimBlockComment
	KindVerbatimBlockLineComment
	KindVerbatimLineComment

	// Other
	KindTemplateArgument
)

var kindNames = [...]string{
	KindNull:                "",
	KindOther:               "",
	KindAccessSpecDecl:      "AccessSpecDecl",
	KindBindingDecl:         "BindingDecl",
	KindBlockDecl:           "BlockDecl",
	KindBuiltinTemplateDecl: "BuiltinTemplateDecl",
	KindCapturedDecl:        "CapturedDecl",
	KindClassTemplateDecl:   "ClassTemplateDecl",
	KindClassTemplatePartialSpecializationDecl: "ClassTemplatePartialSpecializationDecl",
	KindClassTemplateSpecializationDecl:        "ClassTemplateSpecializationDecl",
	KindConceptDecl:                            "ConceptDecl",
	KindCXXConstructorDecl:                     "CXXConstructorDecl",
	KindCXXConversionDecl:                      "CXXConversionDecl",
	KindCXXDeductionGuideDecl:                  "CXXDeductionGuideDecl",
	KindCXXDestructorDecl:                      "CXXDestructorDecl",
	KindCXXMethodDecl:                          "CXXMethodDecl",
	KindCXXRecordDecl:                          "CXXRecordDecl",
	KindDecompositionDecl:                      "DecompositionDecl",
	KindEmptyDecl:                              "EmptyDecl",
	KindEnumConstantDecl:                       "EnumConstantDecl",
	KindEnumDecl:                               "EnumDecl",
	KindExportDecl:                             "ExportDecl",
	KindFieldDecl:                              "FieldDecl",
	KindFileScopeAsmDecl:                       "FileScopeAsmDecl",
	KindFriendDecl:                             "FriendDecl",
	KindFriendTemplateDecl:                     "FriendTemplateDecl",
	KindFunctionDecl:                           "FunctionDecl",
	KindFunctionTemplateDecl:                   "FunctionTemplateDecl",
	KindImplicitConceptSpecializationDecl:      "ImplicitConceptSpecializationDecl",
	KindImplicitParamDecl:                      "ImplicitParamDecl",
	KindImportDecl:                             "ImportDecl",
	KindIndirectFieldDecl:                      "IndirectFieldDecl",
	KindLabelDecl:                              "LabelDecl",
	KindLinkageSpecDecl:                        "LinkageSpecDecl",
	KindNamespaceAliasDecl:                     "NamespaceAliasDecl",
	KindNamespaceDecl:                          "NamespaceDecl",
	KindNonTypeTemplateParmDecl:                "NonTypeTemplateParmDecl",
	KindParmVarDecl:                            "ParmVarDecl",
	KindPragmaCommentDecl:                      "PragmaCommentDecl",
	KindPragmaDetectMismatchDecl:               "PragmaDetectMismatchDecl",
	KindRecordDecl:                             "RecordDecl",
	KindRequiresExprBodyDecl:                   "RequiresExprBodyDecl",
	KindStaticAssertDecl:                       "StaticAssertDecl",
	KindTemplateTemplateParmDecl:               "TemplateTemplateParmDecl",
	KindTemplateTypeParmDecl:                   "TemplateTypeParmDecl",
	KindTranslationUnitDecl:                    "TranslationUnitDecl",
	KindTypeAliasDecl:                          "TypeAliasDecl",
	KindTypeAliasTemplateDecl:                  "TypeAliasTemplateDecl",
	KindTypedefDecl:                            "TypedefDecl",
	KindUnresolvedUsingTypenameDecl:            "UnresolvedUsingTypenameDecl",
	KindUnresolvedUsingValueDecl:               "UnresolvedUsingValueDecl",
	KindUsingDecl:                              "UsingDecl",
	KindUsingDirectiveDecl:                     "UsingDirectiveDecl",
	KindUsingEnumDecl:                          "UsingEnumDecl",
	KindUsingPackDecl:                          "UsingPackDecl",
	KindUsingShadowDecl:                        "UsingShadowDecl",
	KindConstructorUsingShadowDecl:             "ConstructorUsingShadowDecl",
	KindVarDecl:                                "VarDecl",
	KindVarTemplateDecl:                        "VarTemplateDecl",
	KindVarTemplatePartialSpecializationDecl:   "VarTemplatePartialSpecializationDecl",
	KindVarTemplateSpecializationDecl:          "VarTemplateSpecializationDecl",
	KindAttributedStmt:                         "AttributedStmt",
	KindBreakStmt:                              "BreakStmt",
	KindCaseStmt:                               "CaseStmt",
	KindCompoundStmt:                           "CompoundStmt",
	KindContinueStmt:                           "ContinueStmt",
	KindCoreturnStmt:                           "CoreturnStmt",
	KindCoroutineBodyStmt:                      "CoroutineBodyStmt",
	KindCXXCatchStmt:                           "CXXCatchStmt",
	KindCXXForRangeStmt:                        "CXXForRangeStmt",
	KindCXXTryStmt:                             "CXXTryStmt",
	KindDeclStmt:                               "DeclStmt",
	KindDefaultStmt:                            "DefaultStmt",
	KindDoStmt:                                 "DoStmt",
	KindForStmt:                                "ForStmt",
	KindGCCAsmStmt:                             "GCCAsmStmt",
	KindGotoStmt:                               "GotoStmt",
	KindIfStmt:                                 "IfStmt",
	KindIndirectGotoStmt:                       "IndirectGotoStmt",
	KindLabelStmt:                              "LabelStmt",
	KindMSAsmStmt:                              "MSAsmStmt",
	KindNullStmt:                               "NullStmt",
	KindReturnStmt:                             "ReturnStmt",
	KindSwitchStmt:                             "SwitchStmt",
	KindWhileStmt:                              "WhileStmt",
	KindArrayInitIndexExpr:                     "ArrayInitIndexExpr",
	KindArrayInitLoopExpr:                      "ArrayInitLoopExpr",
	KindArraySubscriptExpr:                     "ArraySubscriptExpr",
	KindAtomicExpr:                             "AtomicExpr",
	KindBinaryConditionalOperator:              "BinaryConditionalOperator",
	KindBinaryOperator:                         "BinaryOperator",
	KindBlockExpr:                              "BlockExpr",
	KindBuiltinBitCastExpr:                     "BuiltinBitCastExpr",
	KindCallExpr:                               "CallExpr",
	KindCharacterLiteral:                       "CharacterLiteral",
	KindChooseExpr:                             "ChooseExpr",
	KindCompoundAssignOperator:                 "CompoundAssignOperator",
	KindCompoundLiteralExpr:                    "CompoundLiteralExpr",
	KindConceptSpecializationExpr:              "ConceptSpecializationExpr",
	KindConditionalOperator:                    "ConditionalOperator",
	KindConstantExpr:                           "ConstantExpr",
	KindConvertVectorExpr:                      "ConvertVectorExpr",
	KindCoawaitExpr:                            "CoawaitExpr",
	KindCoyieldExpr:                            "CoyieldExpr",
	KindCStyleCastExpr:                         "CStyleCastExpr",
	KindCXXAddrspaceCastExpr:                   "CXXAddrspaceCastExpr",
	KindCXXBindTemporaryExpr:                   "CXXBindTemporaryExpr",
	KindCXXBoolLiteralExpr:                     "CXXBoolLiteralExpr",
	KindCXXConstCastExpr:                       "CXXConstCastExpr",
	KindCXXConstructExpr:                       "CXXConstructExpr",
	KindCXXDefaultArgExpr:                      "CXXDefaultArgExpr",
	KindCXXDefaultInitExpr:                     "CXXDefaultInitExpr",
	KindCXXDeleteExpr:                          "CXXDeleteExpr",
	KindCXXDependentScopeMemberExpr:            "CXXDependentScopeMemberExpr",
	KindCXXDynamicCastExpr:                     "CXXDynamicCastExpr",
	KindCXXFoldExpr:                            "CXXFoldExpr",
	KindCXXFunctionalCastExpr:                  "CXXFunctionalCastExpr",
	KindCXXInheritedCtorInitExpr:               "CXXInheritedCtorInitExpr",
	KindCXXMemberCallExpr:                      "CXXMemberCallExpr",
	KindCXXNewExpr:                             "CXXNewExpr",
	KindCXXNoexceptExpr:                        "CXXNoexceptExpr",
	KindCXXNullPtrLiteralExpr:                  "CXXNullPtrLiteralExpr",
	KindCXXOperatorCallExpr:                    "CXXOperatorCallExpr",
	KindCXXParenListInitExpr:                   "CXXParenListInitExpr",
	KindCXXPseudoDestructorExpr:                "CXXPseudoDestructorExpr",
	KindCXXReinterpretCastExpr:                 "CXXReinterpretCastExpr",
	KindCXXRewrittenBinaryOperator:             "CXXRewrittenBinaryOperator",
	KindCXXScalarValueInitExpr:                 "CXXScalarValueInitExpr",
	KindCXXStaticCastExpr:                      "CXXStaticCastExpr",
	KindCXXStdInitializerListExpr:              "CXXStdInitializerListExpr",
	KindCXXTemporaryObjectExpr:                 "CXXTemporaryObjectExpr",
	KindCXXThisExpr:                            "CXXThisExpr",
	KindCXXThrowExpr:                           "CXXThrowExpr",
	KindCXXTypeidExpr:                          "CXXTypeidExpr",
	KindCXXUnresolvedConstructExpr:             "CXXUnresolvedConstructExpr",
	KindCXXUuidofExpr:                          "CXXUuidofExpr",
	KindDeclRefExpr:                            "DeclRefExpr",
	KindDependentCoawaitExpr:                   "DependentCoawaitExpr",
	KindDependentScopeDeclRefExpr:              "DependentScopeDeclRefExpr",
	KindDesignatedInitExpr:                     "DesignatedInitExpr",
	KindDesignatedInitUpdateExpr:               "DesignatedInitUpdateExpr",
	KindExprWithCleanups:                       "ExprWithCleanups",
	KindExtVectorElementExpr:                   "ExtVectorElementExpr",
	KindFixedPointLiteral:                      "FixedPointLiteral",
	KindFloatingLiteral:                        "FloatingLiteral",
	KindFunctionParmPackExpr:                   "FunctionParmPackExpr",
	KindGenericSelectionExpr:                   "GenericSelectionExpr",
	KindGNUNullExpr:                            "GNUNullExpr",
	KindImaginaryLiteral:                       "ImaginaryLiteral",
	KindImplicitCastExpr:                       "ImplicitCastExpr",
	KindImplicitValueInitExpr:                  "ImplicitValueInitExpr",
	KindInitListExpr:                           "InitListExpr",
	KindIntegerLiteral:                         "IntegerLiteral",
	KindLambdaExpr:                             "LambdaExpr",
	KindMaterializeTemporaryExpr:               "MaterializeTemporaryExpr",
	KindMatrixSubscriptExpr:                    "MatrixSubscriptExpr",
	KindMemberExpr:                             "MemberExpr",
	KindNoInitExpr:                             "NoInitExpr",
	KindOffsetOfExpr:                           "OffsetOfExpr",
	KindOpaqueValueExpr:                        "OpaqueValueExpr",
	KindPackExpansionExpr:                      "PackExpansionExpr",
	KindParenExpr:                              "ParenExpr",
	KindParenListExpr:                          "ParenListExpr",
	KindPredefinedExpr:                         "PredefinedExpr",
	KindPseudoObjectExpr:                       "PseudoObjectExpr",
	KindRecoveryExpr:                           "RecoveryExpr",
	KindRequiresExpr:                           "RequiresExpr",
	KindShuffleVectorExpr:                      "ShuffleVectorExpr",
	KindSizeOfPackExpr:                         "SizeOfPackExpr",
	KindSourceLocExpr:                          "SourceLocExpr",
	KindStmtExpr:                               "StmtExpr",
	KindStringLiteral:                          "StringLiteral",
	KindSubstNonTypeTemplateParmExpr:           "SubstNonTypeTemplateParmExpr",
	KindSubstNonTypeTemplateParmPackExpr:       "SubstNonTypeTemplateParmPackExpr",
	KindTypeTraitExpr:                          "TypeTraitExpr",
	KindUnaryExprOrTypeTraitExpr:               "UnaryExprOrTypeTraitExpr",
	KindUnaryOperator:                          "UnaryOperator",
	KindUnresolvedLookupExpr:                   "UnresolvedLookupExpr",
	KindUnresolvedMemberExpr:                   "UnresolvedMemberExpr",
	KindUserDefinedLiteral:                     "UserDefinedLiteral",
	KindVAArgExpr:                              "VAArgExpr",
	KindAdjustedType:                           "AdjustedType",
	KindAtomicType:                             "AtomicType",
	KindAttributedType:                         "AttributedType",
	KindAutoType:                               "AutoType",
	KindBitIntType:                             "BitIntType",
	KindBlockPointerType:                       "BlockPointerType",
	KindBTFTagAttributedType:                   "BTFTagAttributedType",
	KindBuiltinType:                            "BuiltinType",
	KindComplexType:                            "ComplexType",
	KindConstantArrayType:                      "ConstantArrayType",
	KindConstantMatrixType:                     "ConstantMatrixType",
	KindDecayedType:                            "DecayedType",
	KindDecltypeType:                           "DecltypeType",
	KindDeducedTemplateSpecializationType:      "DeducedTemplateSpecializationType",
	KindDependentAddressSpaceType:              "DependentAddressSpaceType",
	KindDependentBitIntType:                    "DependentBitIntType",
	KindDependentNameType:                      "DependentNameType",
	KindDependentSizedArrayType:                "DependentSizedArrayType",
	KindDependentSizedExtVectorType:            "DependentSizedExtVectorType",
	KindDependentTemplateSpecializationType:    "DependentTemplateSpecializationType",
	KindDependentVectorType:                    "DependentVectorType",
	KindElaboratedType:                         "ElaboratedType",
	KindEnumType:                               "EnumType",
	KindExtVectorType:                          "ExtVectorType",
	KindFunctionNoProtoType:                    "FunctionNoProtoType",
	KindFunctionProtoType:                      "FunctionProtoType",
	KindIncompleteArrayType:                    "IncompleteArrayType",
	KindInjectedClassNameType:                  "InjectedClassNameType",
	KindLValueReferenceType:                    "LValueReferenceType",
	KindMacroQualifiedType:                     "MacroQualifiedType",
	KindMemberPointerType:                      "MemberPointerType",
	KindPackExpansionType:                      "PackExpansionType",
	KindParenType:                              "ParenType",
	KindPipeType:                               "PipeType",
	KindPointerType:                            "PointerType",
	KindQualType:                               "QualType",
	KindRecordType:                             "RecordType",
	KindRValueReferenceType:                    "RValueReferenceType",
	KindSubstTemplateTypeParmPackType:          "SubstTemplateTypeParmPackType",
	KindSubstTemplateTypeParmType:              "SubstTemplateTypeParmType",
	KindTemplateSpecializationType:             "TemplateSpecializationType",
	KindTemplateTypeParmType:                   "TemplateTypeParmType",
	KindTypedefType:                            "TypedefType",
	KindTypeOfExprType:                         "TypeOfExprType",
	KindTypeOfType:                             "TypeOfType",
	KindUnaryTransformType:                     "UnaryTransformType",
	KindUnresolvedUsingType:                    "UnresolvedUsingType",
	KindUsingType:                              "UsingType",
	KindVariableArrayType:                      "VariableArrayType",
	KindVectorType:                             "VectorType",
	KindAbiTagAttr:                             "AbiTagAttr",
	KindAliasAttr:                              "AliasAttr",
	KindAlignedAttr:                            "AlignedAttr",
	KindAllocAlignAttr:                         "AllocAlignAttr",
	KindAllocSizeAttr:                          "AllocSizeAttr",
	KindAlwaysInlineAttr:                       "AlwaysInlineAttr",
	KindAnnotateAttr:                           "AnnotateAttr",
	KindArtificialAttr:                         "ArtificialAttr",
	KindAsmLabelAttr:                           "AsmLabelAttr",
	KindAvailabilityAttr:                       "AvailabilityAttr",
	KindBuiltinAttr:                            "BuiltinAttr",
	KindCleanupAttr:                            "CleanupAttr",
	KindColdAttr:                               "ColdAttr",
	KindConstAttr:                              "ConstAttr",
	KindConstInitAttr:                          "ConstInitAttr",
	KindConstructorAttr:                        "ConstructorAttr",
	KindCXX11NoReturnAttr:                      "CXX11NoReturnAttr",
	KindDeprecatedAttr:                         "DeprecatedAttr",
	KindDestructorAttr:                         "DestructorAttr",
	KindDiagnoseIfAttr:                         "DiagnoseIfAttr",
	KindEnableIfAttr:                           "EnableIfAttr",
	KindExcludeFromExplicitInstantiationAttr:   "ExcludeFromExplicitInstantiationAttr",
	KindFallThroughAttr:                        "FallThroughAttr",
	KindFinalAttr:                              "FinalAttr",
	KindFlattenAttr:                            "FlattenAttr",
	KindFormatArgAttr:                          "FormatArgAttr",
	KindFormatAttr:                             "FormatAttr",
	KindGNUInlineAttr:                          "GNUInlineAttr",
	KindHotAttr:                                "HotAttr",
	KindInternalLinkageAttr:                    "InternalLinkageAttr",
	KindLeafAttr:                               "LeafAttr",
	KindLifetimeBoundAttr:                      "LifetimeBoundAttr",
	KindLikelyAttr:                             "LikelyAttr",
	KindMaxFieldAlignmentAttr:                  "MaxFieldAlignmentAttr",
	KindMayAliasAttr:                           "MayAliasAttr",
	KindModeAttr:                               "ModeAttr",
	KindNoDebugAttr:                            "NoDebugAttr",
	KindNoEscapeAttr:                           "NoEscapeAttr",
	KindNoInlineAttr:                           "NoInlineAttr",
	KindNoSanitizeAttr:                         "NoSanitizeAttr",
	KindNoThrowAttr:                            "NoThrowAttr",
	KindNoUniqueAddressAttr:                    "NoUniqueAddressAttr",
	KindNonNullAttr:                            "NonNullAttr",
	KindOverrideAttr:                           "OverrideAttr",
	KindPackedAttr:                             "PackedAttr",
	KindPreferredNameAttr:                      "PreferredNameAttr",
	KindPureAttr:                               "PureAttr",
	KindRestrictAttr:                           "RestrictAttr",
	KindReturnsNonNullAttr:                     "ReturnsNonNullAttr",
	KindReturnsTwiceAttr:                       "ReturnsTwiceAttr",
	KindSectionAttr:                            "SectionAttr",
	KindSentinelAttr:                           "SentinelAttr",
	KindTypeVisibilityAttr:                     "TypeVisibilityAttr",
	KindUnavailableAttr:                        "UnavailableAttr",
	KindUnlikelyAttr:                           "UnlikelyAttr",
	KindUnusedAttr:                             "UnusedAttr",
	KindUsedAttr:                               "UsedAttr",
	KindVisibilityAttr:                         "VisibilityAttr",
	KindWarnUnusedResultAttr:                   "WarnUnusedResultAttr",
	KindWeakAttr:                               "WeakAttr",
	KindWeakImportAttr:                         "WeakImportAttr",
	KindWeakRefAttr:                            "WeakRefAttr",
	KindBlockCommandComment:                    "BlockCommandComment",
	KindFullComment:                            "FullComment",
	KindHTMLEndTagComment:                      "HTMLEndTagComment",
	KindHTMLStartTagComment:                    "HTMLStartTagComment",
	KindInlineCommandComment:                   "InlineCommandComment",
	KindParagraphComment:                       "ParagraphComment",
	KindParamCommandComment:                    "ParamCommandComment",
	KindTextComment:                            "TextComment",
	KindTParamCommandComment:                   "TParamCommandComment",
	KindVerbatimBlockComment:                   "VerbatimBlockComment",
	KindVerbatimBlockLineComment:               "VerbatimBlockLineComment",
	KindVerbatimLineComment:                    "VerbatimLineComment",
	KindTemplateArgument:                       "TemplateArgument",
}
